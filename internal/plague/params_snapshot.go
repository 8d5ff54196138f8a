package plague

import (
	"strconv"

	"plague/internal/core"
)

// Parameters lists the simulation's configuration for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("group_size", "Group size", s.cfg.GroupSize),
				intParam("columns", "Columns", s.topo.Columns),
				intParam("rows", "Rows", s.topo.Rows),
			},
		},
		{
			Name: "Spread",
			Params: []core.Parameter{
				intParam("infection_factor", "Infection factor", s.cfg.InfectionFactor),
				{
					Key:   "period",
					Label: "Period",
					Type:  core.ParamTypeDuration,
					Value: s.cfg.Period.String(),
				},
				{
					Key:   "seed",
					Label: "Seed",
					Type:  core.ParamTypeInt,
					Value: strconv.FormatInt(s.cfg.Seed, 10),
				},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
