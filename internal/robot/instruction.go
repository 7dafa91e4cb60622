package robot

import (
	"fmt"
	"strings"
)

// Instruction is a single journey command.
type Instruction int

const (
	Left Instruction = iota
	Right
	Forward
)

func (i Instruction) String() string {
	switch i {
	case Left:
		return "L"
	case Right:
		return "R"
	case Forward:
		return "F"
	default:
		return fmt.Sprintf("Instruction(%d)", int(i))
	}
}

// Journey is the ordered list of instructions a robot follows.
type Journey []Instruction

func (j Journey) String() string {
	var sb strings.Builder
	for _, in := range j {
		sb.WriteString(in.String())
	}
	return sb.String()
}

// Turn is the rotation direction used by Position.Turn.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

func (t Turn) String() string {
	if t == TurnLeft {
		return "left"
	}
	return "right"
}
