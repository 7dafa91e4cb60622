// Package parser turns instruction file commands into a grid and the
// scenarios to run on it. Every command is validated against its whole-line
// grammar; the first malformed command rejects the entire instruction set.
package parser

import (
	"fmt"
	"strings"

	"robotgrid/internal/grid"
	"robotgrid/internal/robot"
)

// ScenarioCommandLength is the number of commands describing one scenario:
// start position, journey and expected end position.
const ScenarioCommandLength = 3

const (
	obstacleKeyword = "OBSTACLE"

	gridExample     = "GRID 4x3"
	obstacleExample = "OBSTACLE 1 2"
	positionExample = "5 4 W"
	journeyExample  = "RFRFLL"
)

// InstructionSet is a fully validated instruction file.
type InstructionSet struct {
	Grid      *grid.Grid
	Scenarios []*grid.Scenario
}

// ParseGridDimensions reads "GRID <width>x<height>". Both sizes must be
// positive.
func ParseGridDimensions(line string) (robot.Point, error) {
	g, err := gridParser.ParseString("", line)
	if err != nil {
		return robot.Point{}, formatError(ErrGridFormat, line, gridExample, err)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return robot.Point{}, formatError(ErrGridFormat, line, gridExample,
			fmt.Errorf("grid dimensions must be positive, got %dx%d", g.Width, g.Height))
	}
	return robot.Point{X: g.Width, Y: g.Height}, nil
}

// ParseObstacle reads "OBSTACLE <x> <y>".
func ParseObstacle(line string) (robot.Point, error) {
	o, err := obstacleParser.ParseString("", line)
	if err != nil {
		return robot.Point{}, formatError(ErrObstacleFormat, line, obstacleExample, err)
	}
	return robot.Point{X: o.X, Y: o.Y}, nil
}

// ParsePosition reads "<x> <y> <heading>" where heading is N, E, S or W.
func ParsePosition(line string) (robot.Position, error) {
	p, err := positionParser.ParseString("", line)
	if err != nil {
		return robot.Position{}, formatError(ErrPositionFormat, line, positionExample, err)
	}
	return robot.NewPosition(p.X, p.Y, p.Heading), nil
}

// ParseScenario builds a scenario from its three commands.
func ParseScenario(start, journey, end string) (*grid.Scenario, error) {
	return parseScenarioAt([]string{start, journey, end}, 0)
}

// ParseInstructionSet parses a whole instruction file. Blank lines must
// already have been removed.
//
// The first command declares the grid. OBSTACLE commands directly after it
// are obstacles; an OBSTACLE command anywhere later is read as scenario data
// and fails there. What remains must split into groups of
// ScenarioCommandLength commands.
func ParseInstructionSet(lines []string) (*InstructionSet, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	dimensions, err := ParseGridDimensions(lines[0])
	if err != nil {
		return nil, atCommand(err, 1)
	}

	n := 1
	var obstacles []robot.Point
	for n < len(lines) && strings.HasPrefix(lines[n], obstacleKeyword) {
		o, err := ParseObstacle(lines[n])
		if err != nil {
			return nil, atCommand(err, n+1)
		}
		obstacles = append(obstacles, o)
		n++
	}

	rest := lines[n:]
	if len(rest)%ScenarioCommandLength != 0 {
		return nil, fmt.Errorf("%w, found %d commands after the grid and obstacle declarations (start position, journey, end position per scenario)",
			ErrScenarioGrouping, len(rest))
	}

	set := &InstructionSet{
		Grid:      grid.New(dimensions, obstacles),
		Scenarios: make([]*grid.Scenario, 0, len(rest)/ScenarioCommandLength),
	}
	for i := 0; i < len(rest); i += ScenarioCommandLength {
		s, err := parseScenarioAt(rest[i:i+ScenarioCommandLength], n+i+1)
		if err != nil {
			return nil, err
		}
		set.Scenarios = append(set.Scenarios, s)
	}
	return set, nil
}

// parseScenarioAt parses one scenario group whose first command is command
// number first in the instruction set, or unnumbered when first is 0.
func parseScenarioAt(commands []string, first int) (*grid.Scenario, error) {
	number := func(offset int) int {
		if first == 0 {
			return 0
		}
		return first + offset
	}

	from, err := ParsePosition(commands[0])
	if err != nil {
		return nil, atCommand(err, number(0))
	}
	j, err := ParseJourney(commands[1])
	if err != nil {
		return nil, atCommand(err, number(1))
	}
	to, err := ParsePosition(commands[2])
	if err != nil {
		return nil, atCommand(err, number(2))
	}
	return grid.NewScenario(from, j, to), nil
}
