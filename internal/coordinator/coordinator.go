// Package coordinator loads an instruction file, parses it and runs every
// scenario against the grid in file order.
package coordinator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"robotgrid/internal/grid"
	"robotgrid/internal/parser"
)

var (
	ErrMissingFile = errors.New("unable to locate command file")
	ErrNoScenarios = errors.New("unable to run scenarios, no scenarios have been loaded")
)

// Result is the outcome of one scenario. Number counts from 1 in file order.
type Result struct {
	Number   int
	Scenario *grid.Scenario
	Outcome  grid.Outcome
}

func (r Result) String() string {
	return r.Outcome.String()
}

type Results []Result

// Lines renders one result line per scenario.
func (rs Results) Lines() []string {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, r.String())
	}
	return lines
}

// Count returns how many results ended with the given status.
func (rs Results) Count(status grid.Status) int {
	n := 0
	for _, r := range rs {
		if r.Outcome.Status == status {
			n++
		}
	}
	return n
}

type Coordinator struct {
	logger    *zap.SugaredLogger
	listeners []grid.Listener
}

// New returns a coordinator that notifies listeners about every scenario it
// runs. Steps are always logged at debug level.
func New(logger *zap.SugaredLogger, listeners ...grid.Listener) *Coordinator {
	return &Coordinator{
		logger:    logger,
		listeners: append([]grid.Listener{&stepLogger{logger: logger}}, listeners...),
	}
}

// LoadLines reads the commands in path, dropping blank lines.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading command file %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into commands. Empty and whitespace-only lines are
// dropped and a trailing carriage return is removed; nothing else is
// trimmed.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Parse validates the commands and refuses instruction sets with nothing
// to run.
func (c *Coordinator) Parse(lines []string) (*parser.InstructionSet, error) {
	set, err := parser.ParseInstructionSet(lines)
	if err != nil {
		return nil, err
	}
	if len(set.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	dims := set.Grid.Dimensions()
	c.logger.Infow("parsed instruction set",
		"width", dims.X,
		"height", dims.Y,
		"obstacles", len(set.Grid.Obstacles()),
		"scenarios", len(set.Scenarios),
	)
	return set, nil
}

// Run executes every scenario in order. The extra listeners only observe
// this call.
func (c *Coordinator) Run(set *parser.InstructionSet, extra ...grid.Listener) Results {
	listeners := append(append([]grid.Listener(nil), c.listeners...), extra...)

	results := make(Results, 0, len(set.Scenarios))
	for i, s := range set.Scenarios {
		outcome := set.Grid.Run(s, listeners...)
		results = append(results, Result{Number: i + 1, Scenario: s, Outcome: outcome})
	}
	return results
}

func (c *Coordinator) RunLines(lines []string, extra ...grid.Listener) (Results, error) {
	set, err := c.Parse(lines)
	if err != nil {
		return nil, err
	}
	return c.Run(set, extra...), nil
}

func (c *Coordinator) RunFile(path string, extra ...grid.Listener) (Results, error) {
	lines, err := LoadLines(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debugw("loaded command file", "path", path, "commands", len(lines))
	return c.RunLines(lines, extra...)
}
