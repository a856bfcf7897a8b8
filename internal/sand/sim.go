package sand

import (
	"fmt"

	"sandfall/internal/core"
)

// Outcome describes why a run stopped.
type Outcome uint8

const (
	Running Outcome = iota
	// Overflow means a unit fell out of the bounded grid.
	Overflow
	// Blocked means a unit came to rest on the source.
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Overflow:
		return "overflow"
	case Blocked:
		return "blocked"
	default:
		return "running"
	}
}

// Result summarizes a run.
type Result struct {
	// Resting is the number of sand cells in the grid.
	Resting int
	Spawned int
	Ticks   int
	Outcome Outcome
}

type move uint8

const (
	moveRest move = iota
	moveFall
	moveWait
	moveVoid
)

// fallOrder lists the candidate moves of a falling unit by priority.
var fallOrder = [...]func(core.Pt) core.Pt{
	core.Pt2[int].Down,
	core.Pt2[int].DownLeft,
	core.Pt2[int].DownRight,
}

// nextMove applies the fall rule to the unit at p. The first candidate that
// is outside the grid sends the unit into the void; one held by another
// falling unit makes it wait; an open one is taken. With every candidate
// solid the unit rests.
func nextMove(g *Grid, inFlight func(core.Pt) bool, p core.Pt) (core.Pt, move) {
	for _, next := range fallOrder {
		q := next(p)
		if !g.InBounds(q) {
			return q, moveVoid
		}
		if inFlight(q) {
			return p, moveWait
		}
		if open(g.At(q)) {
			return q, moveFall
		}
	}
	return p, moveRest
}

// Sim drops sand into a Grid until it overflows or the source is blocked.
type Sim struct {
	cfg Config

	grid    *Grid
	initial []uint8
	moving  []bool
	active  []core.Pt
	display []uint8
	res     Result
}

// New builds the grid for scan and returns a simulation ready to run.
func New(scan Scan, cfg Config) (*Sim, error) {
	g, err := Build(scan, cfg)
	if err != nil {
		return nil, err
	}
	s := NewSim(g, cfg.Schedule)
	s.cfg = cfg
	return s, nil
}

// NewSim wraps an already built grid. The simulation owns g from now on.
func NewSim(g *Grid, schedule Schedule) *Sim {
	total := len(g.Cells())
	cfg := DefaultConfig()
	cfg.Mode = g.Mode()
	cfg.Schedule = schedule
	cfg.SourceX, cfg.SourceY = g.source.X, g.source.Y
	return &Sim{
		cfg:     cfg,
		grid:    g,
		initial: append([]uint8(nil), g.Cells()...),
		moving:  make([]bool, total),
		display: make([]uint8, total),
	}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Grid exposes the simulated grid.
func (s *Sim) Grid() *Grid { return s.grid }

// Config returns the configuration the run was built with.
func (s *Sim) Config() Config { return s.cfg }

// Result returns the counters accumulated so far.
func (s *Sim) Result() Result { return s.res }

// Done reports whether the run has halted.
func (s *Sim) Done() bool { return s.res.Outcome != Running }

// Active returns the positions of units still falling.
func (s *Sim) Active() []core.Pt {
	return append([]core.Pt(nil), s.active...)
}

// Reset restores the grid to its state before the first tick.
func (s *Sim) Reset() {
	copy(s.grid.Cells(), s.initial)
	clear(s.moving)
	s.active = s.active[:0]
	s.res = Result{}
}

// Step advances the simulation by one tick.
func (s *Sim) Step() { s.Tick() }

// Run ticks until the simulation halts.
func (s *Sim) Run() Result {
	for s.Tick() {
	}
	return s.res
}

// Tick spawns a unit when the schedule allows it and moves every falling
// unit once, oldest first. It reports whether the run is still going.
func (s *Sim) Tick() bool {
	if s.Done() {
		return false
	}
	s.res.Ticks++
	if s.cfg.Schedule == SchedulePerTick || len(s.active) == 0 {
		s.spawn()
	}

	kept := s.active[:0]
	for _, p := range s.active {
		q, m := nextMove(s.grid, s.inFlight, p)
		switch m {
		case moveFall:
			s.moving[s.grid.index(p)] = false
			s.moving[s.grid.index(q)] = true
			kept = append(kept, q)
		case moveWait:
			kept = append(kept, p)
		case moveRest:
			s.moving[s.grid.index(p)] = false
			s.grid.set(p, Sand)
			s.res.Resting++
		case moveVoid:
			if s.grid.mode == ModeFloor {
				panic(fmt.Sprintf("sand: unit at %v left a floored grid", p))
			}
			s.halt(Overflow)
			return false
		}
	}
	s.active = kept

	if s.grid.At(s.grid.source) == Sand {
		s.halt(Blocked)
		return false
	}
	return true
}

func (s *Sim) spawn() {
	src := s.grid.source
	if s.moving[s.grid.index(src)] {
		return
	}
	s.active = append(s.active, src)
	s.moving[s.grid.index(src)] = true
	s.res.Spawned++
}

func (s *Sim) inFlight(p core.Pt) bool { return s.moving[s.grid.index(p)] }

// halt stops the run and discards units still in flight.
func (s *Sim) halt(o Outcome) {
	clear(s.moving)
	s.active = s.active[:0]
	s.res.Outcome = o
}
