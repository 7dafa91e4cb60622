package grid

import (
	"fmt"

	"robotgrid/internal/robot"
)

// Status is the terminal state of a scenario run.
type Status int

const (
	Succeeded Status = iota
	Failed
	Crashed
	OutOfBounds
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "SUCCESS"
	case Failed:
		return "FAILURE"
	case Crashed:
		return "CRASHED"
	case OutOfBounds:
		return "OUT OF BOUNDS"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is how a scenario ended and where the robot was at that moment.
type Outcome struct {
	Status   Status
	Position robot.Position
	// Steps is the number of instructions executed before the run ended.
	Steps int
}

func (o Outcome) String() string {
	return fmt.Sprintf("%s %s", o.Status, o.Position)
}

// Listener observes scenario runs. It cannot influence the outcome.
type Listener interface {
	OnStart(s *Scenario)
	OnStep(s *Scenario, in robot.Instruction)
	OnOutcome(s *Scenario, o Outcome)
}
