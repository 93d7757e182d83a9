package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type HeatParameters struct {
	Title       string  `yaml:"Title"`
	N           int     `yaml:"N"`           // nodes per side, even and > 4
	Diffusivity float64 `yaml:"Diffusivity"` // mu
	Dt          float64 `yaml:"Dt"`
	NSteps      int     `yaml:"NSteps"`
	MeshType    string  `yaml:"MeshType"` // "rect", "hex" or "both"
}

func (hp *HeatParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, hp)
}

func (hp *HeatParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", hp.Title)
	fmt.Printf("[%d]\t\t\t= N\n", hp.N)
	fmt.Printf("%8.5f\t\t= Diffusivity\n", hp.Diffusivity)
	fmt.Printf("%8.5f\t\t= Dt\n", hp.Dt)
	fmt.Printf("[%d]\t\t\t= NSteps\n", hp.NSteps)
	fmt.Printf("[%s]\t\t\t= Mesh Type\n", hp.MeshType)
}
