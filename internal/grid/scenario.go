package grid

import (
	"fmt"

	"robotgrid/internal/robot"
)

// Scenario is one robot journey with the position it is expected to end on.
// It owns its positions; callers only ever receive copies.
type Scenario struct {
	start    robot.Position
	current  robot.Position
	expected robot.Position
	journey  robot.Journey
	cursor   int
}

func NewScenario(start robot.Position, journey robot.Journey, expected robot.Position) *Scenario {
	return &Scenario{
		start:    start,
		current:  start,
		expected: expected,
		journey:  append(robot.Journey(nil), journey...),
	}
}

func (s *Scenario) Start() robot.Position    { return s.start }
func (s *Scenario) Current() robot.Position  { return s.current }
func (s *Scenario) Expected() robot.Position { return s.expected }

func (s *Scenario) Journey() robot.Journey {
	return append(robot.Journey(nil), s.journey...)
}

// Cursor is the index of the next instruction to execute.
func (s *Scenario) Cursor() int {
	return s.cursor
}

// Done reports whether every instruction has been executed.
func (s *Scenario) Done() bool {
	return s.cursor >= len(s.journey)
}

// ProcessNextInstruction applies the instruction under the cursor to the
// current position and advances. It returns false, leaving the scenario
// untouched, once the journey is exhausted.
func (s *Scenario) ProcessNextInstruction() (robot.Instruction, bool) {
	if s.Done() {
		return 0, false
	}
	in := s.journey[s.cursor]
	s.cursor++
	s.current.Apply(in)
	return in, true
}

func (s *Scenario) String() string {
	return fmt.Sprintf("%s -> %s -> %s", s.start, s.journey, s.expected)
}
