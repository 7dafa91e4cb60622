package parser

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"robotgrid/internal/robot"
)

var journeyLexer = newJourneyLexer()

func newJourneyLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`L`), instructionAction(robot.Left))
	lx.Add([]byte(`R`), instructionAction(robot.Right))
	lx.Add([]byte(`F`), instructionAction(robot.Forward))
	if err := lx.Compile(); err != nil {
		panic(fmt.Sprintf("journey lexer: %v", err))
	}
	return lx
}

func instructionAction(in robot.Instruction) lexmachine.Action {
	return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return in, nil
	}
}

// ParseJourney converts a line such as "RFRFLL" into instructions. The line
// must hold at least one instruction and nothing but L, R and F.
func ParseJourney(line string) (robot.Journey, error) {
	scanner, err := journeyLexer.Scanner([]byte(line))
	if err != nil {
		return nil, formatError(ErrJourneyFormat, line, journeyExample, err)
	}

	var journey robot.Journey
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			fe := formatError(ErrJourneyFormat, line, journeyExample, nil)
			fe.Column = ui.StartTC + 1
			return nil, fe
		} else if err != nil {
			return nil, formatError(ErrJourneyFormat, line, journeyExample, err)
		}
		journey = append(journey, tok.(robot.Instruction))
	}

	if len(journey) == 0 {
		return nil, formatError(ErrJourneyFormat, line, journeyExample, nil)
	}
	return journey, nil
}
