package Heat2D

// PlotData is everything the external surface renderer consumes: node
// positions, cell polygons as node index lists (6-tuples for hexagonal,
// 4-tuples for rectangular), and the solution at the current time level.
// No rendering happens in this module.
type PlotData struct {
	Time     float64
	X, Y     []float64
	Polygons [][]int
	U        []float64
}

func (c *Heat) GetPlotData() (pd *PlotData) {
	pd = &PlotData{
		Time:     c.Time,
		X:        c.Msh.X.Data(),
		Y:        c.Msh.Y.Data(),
		Polygons: c.Con.Polygons,
		U:        c.U.Data(),
	}
	return
}
