// Package report prints scenario results for people.
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"robotgrid/internal/coordinator"
	"robotgrid/internal/grid"
)

type Reporter struct {
	au      aurora.Aurora
	printer *message.Printer
}

// New returns a reporter; colors are ANSI escapes and should be off when
// output is not a terminal.
func New(colors bool) *Reporter {
	return &Reporter{
		au:      aurora.NewAurora(colors),
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Line renders one result as "<TAG> <x> <y> <heading>" with the tag colored
// by status.
func (r *Reporter) Line(res coordinator.Result) string {
	return fmt.Sprintf("%s %s", r.tag(res.Outcome.Status), res.Outcome.Position)
}

func (r *Reporter) tag(s grid.Status) string {
	switch s {
	case grid.Succeeded:
		return r.au.Green(s).String()
	case grid.Failed:
		return r.au.Brown(s).String()
	case grid.Crashed:
		return r.au.Red(s).String()
	case grid.OutOfBounds:
		return r.au.Magenta(s).String()
	}
	return s.String()
}

// Summary counts results by status.
func (r *Reporter) Summary(results coordinator.Results) string {
	return r.printer.Sprintf("%d scenarios: %d succeeded, %d failed, %d crashed, %d out of bounds",
		len(results),
		results.Count(grid.Succeeded),
		results.Count(grid.Failed),
		results.Count(grid.Crashed),
		results.Count(grid.OutOfBounds),
	)
}

// Write prints every result line in order.
func (r *Reporter) Write(w io.Writer, results coordinator.Results) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, r.Line(res)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints a bold summary line.
func (r *Reporter) WriteSummary(w io.Writer, results coordinator.Results) error {
	_, err := fmt.Fprintln(w, r.au.Bold(r.Summary(results)))
	return err
}
