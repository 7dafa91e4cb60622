package grid

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"

	"robotgrid/internal/robot"
)

type recordingListener struct {
	started  int
	steps    []robot.Position
	outcomes []Outcome
}

func (rl *recordingListener) OnStart(s *Scenario) {
	rl.started++
}

func (rl *recordingListener) OnStep(s *Scenario, in robot.Instruction) {
	rl.steps = append(rl.steps, s.Current())
}

func (rl *recordingListener) OnOutcome(s *Scenario, o Outcome) {
	rl.outcomes = append(rl.outcomes, o)
}

func pos(x, y int, h robot.Heading) robot.Position {
	return robot.NewPosition(x, y, h)
}

func journey(s string) robot.Journey {
	j := make(robot.Journey, 0, len(s))
	for _, c := range s {
		switch c {
		case 'L':
			j = append(j, robot.Left)
		case 'R':
			j = append(j, robot.Right)
		case 'F':
			j = append(j, robot.Forward)
		}
	}
	return j
}

func TestGrid(t *testing.T) {
	spec.Run(t, "Grid", testGrid, spec.Report(report.Terminal{}))
}

func testGrid(t *testing.T, describe spec.G, it spec.S) {
	var subject *Grid

	describe("Contains()", func() {
		it.Before(func() {
			subject = New(robot.Point{X: 4, Y: 3}, nil)
		})

		it("includes the origin and the far corner", func() {
			assert.True(t, subject.Contains(pos(0, 0, robot.North)))
			assert.True(t, subject.Contains(pos(3, 2, robot.West)))
		})

		it("excludes x == width and y == height", func() {
			assert.False(t, subject.Contains(pos(4, 0, robot.North)))
			assert.False(t, subject.Contains(pos(0, 3, robot.North)))
		})

		it("excludes negative coordinates", func() {
			assert.False(t, subject.Contains(pos(-1, 0, robot.North)))
			assert.False(t, subject.Contains(pos(0, -1, robot.North)))
		})

		it("holds the corner rule for any size", func() {
			for w := 1; w <= 5; w++ {
				for h := 1; h <= 5; h++ {
					g := New(robot.Point{X: w, Y: h}, nil)
					assert.True(t, g.Contains(pos(w-1, h-1, robot.East)))
					assert.False(t, g.Contains(pos(w, h-1, robot.East)))
					assert.False(t, g.Contains(pos(w-1, -1, robot.East)))
				}
			}
		})
	})

	describe("IsObstructed()", func() {
		it.Before(func() {
			subject = New(robot.Point{X: 20, Y: 20}, []robot.Point{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}, {X: 1, Y: 3}})
		})

		it("matches obstacle cells regardless of heading", func() {
			for _, h := range robot.Headings() {
				assert.True(t, subject.IsObstructed(pos(1, 3, h)))
			}
		})

		it("does not match free cells", func() {
			assert.False(t, subject.IsObstructed(pos(3, 1, robot.North)))
		})

		it("keeps obstacles in declaration order", func() {
			assert.Equal(t, []robot.Point{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}, {X: 1, Y: 3}}, subject.Obstacles())
		})
	})

	describe("Run()", func() {
		var listener *recordingListener

		it.Before(func() {
			listener = &recordingListener{}
		})

		describe("on a 4x3 grid", func() {
			it.Before(func() {
				subject = New(robot.Point{X: 4, Y: 3}, nil)
			})

			it("succeeds when the robot ends where expected", func() {
				outcome := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFR"), pos(1, 0, robot.West)))
				assert.Equal(t, Succeeded, outcome.Status)
				assert.Equal(t, "SUCCESS 1 0 W", outcome.String())
				assert.Equal(t, 3, outcome.Steps)
			})

			it("fails when the robot ends somewhere else", func() {
				outcome := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFRF"), pos(1, 1, robot.East)))
				assert.Equal(t, "FAILURE 0 0 W", outcome.String())
			})

			it("fails when only the heading differs", func() {
				outcome := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFR"), pos(1, 0, robot.East)))
				assert.Equal(t, Failed, outcome.Status)
			})

			it("reports the robot leaving the grid as an outcome", func() {
				outcome := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFF"), pos(1, 1, robot.East)))
				assert.Equal(t, OutOfBounds, outcome.Status)
				assert.Equal(t, "OUT OF BOUNDS 1 -1 S", outcome.String())
			})

			it("stops at the first out of bounds step without running the rest", func() {
				s := NewScenario(pos(3, 0, robot.East), journey("FLLFF"), pos(0, 0, robot.North))
				outcome := subject.Run(s)
				assert.Equal(t, OutOfBounds, outcome.Status)
				assert.Equal(t, pos(4, 0, robot.East), outcome.Position)
				assert.Equal(t, 1, outcome.Steps)
				assert.False(t, s.Done())
			})

			it("reports a start position outside the grid before any instruction runs", func() {
				outcome := subject.Run(NewScenario(pos(9, 9, robot.North), journey("LLLL"), pos(9, 9, robot.North)))
				assert.Equal(t, OutOfBounds, outcome.Status)
				assert.Equal(t, 0, outcome.Steps)
			})
		})

		describe("with obstacles", func() {
			it.Before(func() {
				subject = New(robot.Point{X: 20, Y: 20}, []robot.Point{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}})
			})

			it("crashes into an obstacle", func() {
				outcome := subject.Run(NewScenario(pos(0, 3, robot.West), journey("LLFFFLFLFL"), pos(2, 4, robot.South)))
				assert.Equal(t, "CRASHED 1 3 E", outcome.String())
			})

			it("still lets robots that avoid obstacles succeed", func() {
				outcome := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFRFRFRF"), pos(1, 1, robot.East)))
				assert.Equal(t, "SUCCESS 1 1 E", outcome.String())

				outcome = subject.Run(NewScenario(pos(3, 2, robot.North), journey("FRRFLLFFRRFLL"), pos(3, 3, robot.North)))
				assert.Equal(t, "SUCCESS 3 3 N", outcome.String())
			})

			it("crashes at the start if the robot starts on an obstacle", func() {
				outcome := subject.Run(NewScenario(pos(1, 2, robot.North), journey("F"), pos(1, 3, robot.North)))
				assert.Equal(t, Crashed, outcome.Status)
				assert.Equal(t, 0, outcome.Steps)
			})
		})

		describe("when a cell is both outside the grid and marked as an obstacle", func() {
			it.Before(func() {
				subject = New(robot.Point{X: 2, Y: 2}, []robot.Point{{X: 2, Y: 0}})
			})

			it("reports out of bounds", func() {
				outcome := subject.Run(NewScenario(pos(1, 0, robot.East), journey("F"), pos(1, 0, robot.East)))
				assert.Equal(t, OutOfBounds, outcome.Status)
				assert.Equal(t, pos(2, 0, robot.East), outcome.Position)
			})
		})

		describe("listeners", func() {
			it.Before(func() {
				subject = New(robot.Point{X: 4, Y: 3}, nil)
				subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFR"), pos(1, 0, robot.West)), listener)
			})

			it("are told when the scenario starts", func() {
				assert.Equal(t, 1, listener.started)
			})

			it("see every position after each instruction", func() {
				assert.Equal(t, []robot.Position{pos(1, 1, robot.South), pos(1, 0, robot.South), pos(1, 0, robot.West)}, listener.steps)
			})

			it("receive the outcome", func() {
				assert.Len(t, listener.outcomes, 1)
				assert.Equal(t, Succeeded, listener.outcomes[0].Status)
			})
		})

		it("shares one grid across scenarios without changing it", func() {
			subject = New(robot.Point{X: 40, Y: 40}, nil)
			first := subject.Run(NewScenario(pos(1, 1, robot.East), journey("RFRFRFRF"), pos(1, 1, robot.East)))
			second := subject.Run(NewScenario(pos(0, 3, robot.West), journey("LLFFFLFLFL"), pos(2, 4, robot.South)))
			assert.Equal(t, "SUCCESS 1 1 E", first.String())
			assert.Equal(t, "SUCCESS 2 4 S", second.String())
			assert.Equal(t, robot.Point{X: 40, Y: 40}, subject.Dimensions())
		})
	})
}
