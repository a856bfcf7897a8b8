package sand

import (
	"slices"
	"strings"
	"testing"

	"sandfall/internal/core"
)

const sampleScan = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9
`

func mustSim(t *testing.T, input string, mode Mode, schedule Schedule) *Sim {
	t.Helper()
	scan, err := ParseScan(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseScan: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Schedule = schedule
	sim, err := New(scan, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sim
}

func TestSampleResting(t *testing.T) {
	tests := []struct {
		mode     Mode
		schedule Schedule
		want     int
		outcome  Outcome
	}{
		{ModeBounded, ScheduleSerial, 24, Overflow},
		{ModeBounded, SchedulePerTick, 24, Overflow},
		{ModeFloor, ScheduleSerial, 93, Blocked},
		{ModeFloor, SchedulePerTick, 93, Blocked},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.schedule.String(), func(t *testing.T) {
			sim := mustSim(t, sampleScan, tt.mode, tt.schedule)
			res := sim.Run()
			if res.Resting != tt.want {
				t.Fatalf("resting = %d, want %d", res.Resting, tt.want)
			}
			if res.Outcome != tt.outcome {
				t.Fatalf("outcome = %v, want %v", res.Outcome, tt.outcome)
			}
			if got := sim.Grid().Count(Sand); got != res.Resting {
				t.Fatalf("grid holds %d sand cells, result says %d", got, res.Resting)
			}
			if sim.Tick() {
				t.Fatal("Tick after halt reported a running simulation")
			}
		})
	}
}

func TestBoundedOverflowDiscardsFallingUnit(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeBounded, ScheduleSerial)
	res := sim.Run()
	if res.Spawned != res.Resting+1 {
		t.Fatalf("spawned %d, resting %d: expected exactly one discarded unit", res.Spawned, res.Resting)
	}
	if len(sim.Active()) != 0 {
		t.Fatalf("expected no falling units after halt, got %v", sim.Active())
	}
}

func TestBoundedSampleFinalPicture(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeBounded, ScheduleSerial)
	sim.Run()
	want := strings.Join([]string{
		"......+...",
		"..........",
		"......o...",
		".....ooo..",
		"....#ooo##",
		"...o#ooo#.",
		"..###ooo#.",
		"....oooo#.",
		".o.ooooo#.",
		"#########.",
	}, "\n") + "\n"
	if got := sim.Grid().String(); got != want {
		t.Fatalf("final grid:\n%s\nwant:\n%s", got, want)
	}
}

func TestFloorSourceCountsAsResting(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeFloor, ScheduleSerial)
	res := sim.Run()
	if got := sim.Grid().At(sim.Grid().Source()); got != Sand {
		t.Fatalf("source cell = %c, want sand", got.Glyph())
	}
	if res.Spawned != res.Resting {
		t.Fatalf("spawned %d, resting %d: every unit should rest in floor mode", res.Spawned, res.Resting)
	}
}

func TestFloorWithoutRock(t *testing.T) {
	// Floor at y=2: one cell on row 0 and three on row 1.
	sim := mustSim(t, "", ModeFloor, ScheduleSerial)
	if res := sim.Run(); res.Resting != 4 {
		t.Fatalf("resting = %d, want 4", res.Resting)
	}
}

func TestBoundedBowlBlocksSource(t *testing.T) {
	for _, schedule := range []Schedule{ScheduleSerial, SchedulePerTick} {
		t.Run(schedule.String(), func(t *testing.T) {
			sim := mustSim(t, "498,0 -> 498,2 -> 502,2 -> 502,0\n", ModeBounded, schedule)
			res := sim.Run()
			if res.Outcome != Blocked {
				t.Fatalf("outcome = %v, want blocked", res.Outcome)
			}
			if res.Resting != 4 || res.Spawned != 4 {
				t.Fatalf("resting=%d spawned=%d, want 4 and 4", res.Resting, res.Spawned)
			}
			if got := sim.Grid().At(sim.Grid().Source()); got != Sand {
				t.Fatalf("source cell = %c, want sand", got.Glyph())
			}
			want := "#.o.#\n#ooo#\n#####\n"
			if got := sim.Grid().String(); got != want {
				t.Fatalf("final grid:\n%s\nwant:\n%s", got, want)
			}
			if sim.Tick() {
				t.Fatal("Tick after a blocked source reported a running simulation")
			}
		})
	}
}

func TestLeftDiagonalPreferred(t *testing.T) {
	// Rock column under the source with a ledge below it.
	sim := mustSim(t, "500,2 -> 500,4\n497,6 -> 503,6\n", ModeBounded, ScheduleSerial)

	var path []core.Pt
	for sim.Result().Resting == 0 {
		if !sim.Tick() {
			t.Fatal("simulation halted before the first unit rested")
		}
		path = append(path, sim.Active()...)
	}
	if len(path) < 2 || path[1] != (core.Pt{X: 499, Y: 2}) {
		t.Fatalf("unit path %v: expected the second step to take the left diagonal", path)
	}
	if got := sim.Grid().At(core.Pt{X: 499, Y: 5}); got != Sand {
		t.Fatalf("first unit should rest at 499,5, found %c there", got.Glyph())
	}
	if got := sim.Grid().At(core.Pt{X: 501, Y: 5}); got != Air {
		t.Fatalf("right side should still be empty, found %c", got.Glyph())
	}
}

func TestBottomGapHaltsOnFirstUnit(t *testing.T) {
	sim := mustSim(t, "496,4 -> 499,4\n501,4 -> 504,4\n", ModeBounded, ScheduleSerial)
	res := sim.Run()
	if res.Outcome != Overflow {
		t.Fatalf("outcome = %v, want overflow", res.Outcome)
	}
	if res.Resting != 0 || res.Spawned != 1 {
		t.Fatalf("resting=%d spawned=%d, want 0 and 1", res.Resting, res.Spawned)
	}
	if got := sim.Grid().Count(Sand); got != 0 {
		t.Fatalf("grid holds %d sand cells, want 0", got)
	}
}

func TestSandNeverExceedsSpawns(t *testing.T) {
	for _, schedule := range []Schedule{ScheduleSerial, SchedulePerTick} {
		for _, mode := range []Mode{ModeBounded, ModeFloor} {
			sim := mustSim(t, sampleScan, mode, schedule)
			for {
				running := sim.Tick()
				res := sim.Result()
				if n := sim.Grid().Count(Sand) + len(sim.Active()); n > res.Spawned {
					t.Fatalf("%v/%v tick %d: %d sand + falling > %d spawned", mode, schedule, res.Ticks, n, res.Spawned)
				}
				if !running {
					break
				}
			}
		}
	}
}

func TestPerTickKeepsSeveralUnitsInFlight(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeFloor, SchedulePerTick)
	for i := 0; i < 4; i++ {
		sim.Tick()
	}
	if n := len(sim.Active()); n < 2 {
		t.Fatalf("expected several units in flight, got %d", n)
	}
	seen := map[core.Pt]bool{}
	for _, p := range sim.Active() {
		if seen[p] {
			t.Fatalf("two units share %v", p)
		}
		seen[p] = true
	}
}

func TestResetRestoresInitialGrid(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeBounded, ScheduleSerial)
	initial := append([]uint8(nil), sim.Grid().Cells()...)
	sim.Run()
	sim.Reset()
	if !slices.Equal(initial, sim.Grid().Cells()) {
		t.Fatal("Reset did not restore the initial grid")
	}
	if sim.Done() || sim.Result() != (Result{}) {
		t.Fatalf("Reset left result %+v", sim.Result())
	}
	if res := sim.Run(); res.Resting != 24 {
		t.Fatalf("rerun resting = %d, want 24", res.Resting)
	}
}

func TestCellsOverlayFallingUnits(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeBounded, ScheduleSerial)
	sim.Tick()
	active := sim.Active()
	if len(active) != 1 {
		t.Fatalf("expected one falling unit, got %v", active)
	}
	cells := sim.Cells()
	if got := cells[sim.Grid().index(active[0])]; got != displayFalling {
		t.Fatalf("display value %d at falling unit, want %d", got, displayFalling)
	}
	if sim.Grid().At(active[0]) != Air {
		t.Fatal("falling unit must not be written into the grid")
	}
}

func TestParametersReportProgress(t *testing.T) {
	sim := mustSim(t, sampleScan, ModeFloor, ScheduleSerial)
	sim.Run()
	snap := sim.Parameters()
	for key, want := range map[string]string{
		"part":    "part2",
		"resting": "93",
		"outcome": "blocked",
		"source":  "500,0",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("snapshot missing %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
}
