package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeDuration denotes time.Duration parameters.
	ParamTypeDuration ParamType = "duration"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string      `json:"name"`
	Params []Parameter `json:"params"`
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup `json:"groups"`
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
