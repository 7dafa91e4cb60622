package grid

import (
	"robotgrid/internal/robot"
)

// Grid is a bounded rectangle of cells, some of which hold obstacles.
// It is read-only once built and may be shared by any number of scenarios.
type Grid struct {
	dimensions robot.Point
	obstacles  []robot.Point
	blocked    map[robot.Point]struct{}
}

// New builds a grid of the given width (X) and height (Y).
func New(dimensions robot.Point, obstacles []robot.Point) *Grid {
	g := &Grid{
		dimensions: dimensions,
		obstacles:  append([]robot.Point(nil), obstacles...),
		blocked:    make(map[robot.Point]struct{}, len(obstacles)),
	}
	for _, o := range obstacles {
		g.blocked[o] = struct{}{}
	}
	return g
}

func (g *Grid) Dimensions() robot.Point {
	return g.dimensions
}

// Obstacles returns the obstacle cells in declaration order.
func (g *Grid) Obstacles() []robot.Point {
	return append([]robot.Point(nil), g.obstacles...)
}

// Contains reports whether the position lies inside the grid.
func (g *Grid) Contains(p robot.Position) bool {
	return p.X >= 0 && p.X < g.dimensions.X && p.Y >= 0 && p.Y < g.dimensions.Y
}

// IsObstructed reports whether an obstacle sits on the position's cell.
func (g *Grid) IsObstructed(p robot.Position) bool {
	_, ok := g.blocked[p.Point]
	return ok
}

// Run drives the scenario to a terminal outcome. Before every instruction,
// and once more after the last, the current position is checked: bounds
// first, then obstacles.
func (g *Grid) Run(s *Scenario, listeners ...Listener) Outcome {
	for _, l := range listeners {
		l.OnStart(s)
	}

	var outcome Outcome
	for {
		if !g.Contains(s.Current()) {
			outcome = Outcome{Status: OutOfBounds, Position: s.Current(), Steps: s.Cursor()}
			break
		}
		if g.IsObstructed(s.Current()) {
			outcome = Outcome{Status: Crashed, Position: s.Current(), Steps: s.Cursor()}
			break
		}

		in, ok := s.ProcessNextInstruction()
		if !ok {
			outcome = Outcome{Status: Failed, Position: s.Current(), Steps: s.Cursor()}
			if s.Current() == s.Expected() {
				outcome.Status = Succeeded
			}
			break
		}
		for _, l := range listeners {
			l.OnStep(s, in)
		}
	}

	for _, l := range listeners {
		l.OnOutcome(s, outcome)
	}
	return outcome
}
