package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"robotgrid/internal/robot"
)

// Whitespace is a token of its own and is never elided, so every grammar
// below only accepts single spaces between fields and nothing trailing.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `GRID|OBSTACLE`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Heading", Pattern: `[NESW]`},
	{Name: "By", Pattern: `x`},
	{Name: "Space", Pattern: ` `},
})

type gridLine struct {
	Width  int `parser:"'GRID' Space @Int"`
	Height int `parser:"By @Int"`
}

type obstacleLine struct {
	X int `parser:"'OBSTACLE' Space @Int"`
	Y int `parser:"Space @Int"`
}

type positionLine struct {
	X       int           `parser:"@Int Space"`
	Y       int           `parser:"@Int Space"`
	Heading robot.Heading `parser:"@Heading"`
}

var (
	gridParser     = participle.MustBuild[gridLine](participle.Lexer(lineLexer))
	obstacleParser = participle.MustBuild[obstacleLine](participle.Lexer(lineLexer))
	positionParser = participle.MustBuild[positionLine](participle.Lexer(lineLexer))
)
