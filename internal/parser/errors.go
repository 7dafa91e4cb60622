package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("no commands were supplied")
	ErrGridFormat       = errors.New("the first command must be a valid GRID declaration")
	ErrObstacleFormat   = errors.New("invalid OBSTACLE declaration")
	ErrPositionFormat   = errors.New("invalid robot position")
	ErrJourneyFormat    = errors.New("invalid robot journey")
	ErrScenarioGrouping = errors.New("a scenario must consist of 3 commands")
)

// FormatError describes a single command line that failed validation.
type FormatError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Command is the 1-based position of the line among the non-blank
	// commands, or 0 when the line was parsed on its own.
	Command int
	Line    string
	// Column is the 1-based column of the first bad character when known.
	Column  int
	Example string
	Err     error
}

func (e *FormatError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Command > 0 {
		fmt.Fprintf(&sb, " (command %d", e.Command)
		if e.Column > 0 {
			fmt.Fprintf(&sb, ", column %d", e.Column)
		}
		sb.WriteString(")")
	} else if e.Column > 0 {
		fmt.Fprintf(&sb, " (column %d)", e.Column)
	}
	fmt.Fprintf(&sb, ", command given: %q", e.Line)
	if e.Example != "" {
		fmt.Fprintf(&sb, "; an example of the correct format is %q", e.Example)
	}
	return sb.String()
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func formatError(kind error, line, example string, err error) *FormatError {
	return &FormatError{Kind: kind, Line: line, Example: example, Err: err}
}

// atCommand tags a line error with its position in the instruction set.
func atCommand(err error, n int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Command = n
	}
	return err
}
