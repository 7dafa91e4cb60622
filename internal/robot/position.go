package robot

import "fmt"

// Point is an integer cell coordinate, also used for grid dimensions.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Position is where a robot is and which way it faces. It knows nothing
// about grid bounds.
type Position struct {
	Point
	Heading Heading
}

func NewPosition(x, y int, h Heading) Position {
	return Position{Point: Point{X: x, Y: y}, Heading: h}
}

func (p *Position) Turn(t Turn) {
	switch t {
	case TurnLeft:
		p.Heading = p.Heading.Left()
	case TurnRight:
		p.Heading = p.Heading.Right()
	}
}

func (p *Position) MoveForward() {
	p.Point = p.Point.Add(p.Heading.Delta())
}

// Apply executes a single journey instruction.
func (p *Position) Apply(in Instruction) {
	switch in {
	case Left:
		p.Turn(TurnLeft)
	case Right:
		p.Turn(TurnRight)
	case Forward:
		p.MoveForward()
	}
}

// String renders "<x> <y> <heading>", the format used in result lines.
func (p Position) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Heading)
}
