package FD2D

import "fmt"

// ConfigurationError rejects invalid solver inputs before any mesh
// construction takes place.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// IndexConsistencyError reports a violation of the boundary/stencil-center
// partition invariant. It indicates an indexing bug in the connectivity
// construction and is never recoverable.
type IndexConsistencyError struct {
	Type  MeshType
	Node  int
	Count int
}

func (e *IndexConsistencyError) Error() string {
	return fmt.Sprintf("index consistency: node %d covered %d times in %s connectivity, want exactly once",
		e.Node, e.Count, e.Type.Print())
}

// NumericalError reports a singular or non-finite linear solve. The system
// is deterministic, so there is no retry policy.
type NumericalError struct {
	Type    MeshType
	Step    int
	Time    float64
	Wrapped error
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("numerical: %s mesh, step %d, t = %v: %s",
		e.Type.Print(), e.Step, e.Time, e.Wrapped.Error())
}

func (e *NumericalError) Unwrap() error {
	return e.Wrapped
}
