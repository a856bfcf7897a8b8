package sand

import "sandfall/internal/core"

// Parameters describes the run for display.
func (s *Sim) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	lo, hi := s.grid.Bounds()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Run",
				Params: []core.Parameter{
					core.StringParam("part", "Mode", s.cfg.Mode.String()),
					core.StringParam("schedule", "Schedule", s.cfg.Schedule.String()),
					core.StringParam("source", "Source", s.grid.Source().String()),
				},
			},
			{
				Name: "Grid",
				Params: []core.Parameter{
					core.IntParam("w", "Width", size.W),
					core.IntParam("h", "Height", size.H),
					core.StringParam("bounds", "Bounds", lo.String()+" "+hi.String()),
					core.IntParam("rock", "Rock cells", s.grid.Count(Rock)),
				},
			},
			{
				Name: "Progress",
				Params: []core.Parameter{
					core.IntParam("ticks", "Ticks", s.res.Ticks),
					core.IntParam("spawned", "Spawned", s.res.Spawned),
					core.IntParam("resting", "Resting", s.res.Resting),
					core.IntParam("falling", "Falling", len(s.active)),
					core.StringParam("outcome", "Outcome", s.res.Outcome.String()),
				},
			},
		},
	}
}
