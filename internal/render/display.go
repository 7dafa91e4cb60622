// Package render replays scenarios on a terminal screen.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"robotgrid/internal/grid"
	"robotgrid/internal/robot"
)

const headerRows = 2

var (
	freeStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	targetStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	robotStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	headerStyle   = tcell.StyleDefault.Bold(true)
)

// Display draws the grid after every step of a scenario: '#' for obstacles,
// 'x' for the expected end cell and an arrow for the robot. Row y=0 is the
// bottom line so that moving north goes up the screen.
type Display struct {
	screen   tcell.Screen
	grid     *grid.Grid
	delay    time.Duration
	scenario int
}

func NewDisplay(screen tcell.Screen, g *grid.Grid, delay time.Duration) *Display {
	return &Display{screen: screen, grid: g, delay: delay}
}

func (d *Display) OnStart(s *grid.Scenario) {
	d.scenario++
	d.draw(s, fmt.Sprintf("scenario %d: %s", d.scenario, s.Journey()))
}

func (d *Display) OnStep(s *grid.Scenario, in robot.Instruction) {
	d.draw(s, fmt.Sprintf("scenario %d: step %d/%d %s", d.scenario, s.Cursor(), len(s.Journey()), in))
}

func (d *Display) OnOutcome(s *grid.Scenario, o grid.Outcome) {
	d.draw(s, fmt.Sprintf("scenario %d: %s", d.scenario, o))
}

// Cell maps a grid cell to its screen coordinates.
func (d *Display) Cell(p robot.Point) (col, row int) {
	h := d.grid.Dimensions().Y
	return p.X * 2, headerRows + (h - 1 - p.Y)
}

func (d *Display) draw(s *grid.Scenario, header string) {
	d.screen.Clear()
	d.text(0, 0, header, headerStyle)

	dims := d.grid.Dimensions()
	for y := 0; y < dims.Y; y++ {
		for x := 0; x < dims.X; x++ {
			col, row := d.Cell(robot.Point{X: x, Y: y})
			d.screen.SetContent(col, row, '.', nil, freeStyle)
		}
	}
	for _, o := range d.grid.Obstacles() {
		if d.grid.Contains(robot.Position{Point: o}) {
			col, row := d.Cell(o)
			d.screen.SetContent(col, row, '#', nil, obstacleStyle)
		}
	}
	if target := s.Expected(); d.grid.Contains(target) {
		col, row := d.Cell(target.Point)
		d.screen.SetContent(col, row, 'x', nil, targetStyle)
	}
	if cur := s.Current(); d.grid.Contains(cur) {
		col, row := d.Cell(cur.Point)
		d.screen.SetContent(col, row, cur.Heading.Icon(), nil, robotStyle)
	}

	d.screen.Show()
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
}

func (d *Display) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		d.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
