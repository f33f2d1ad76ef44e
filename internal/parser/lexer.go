package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw player answers into tokens. Input is lowercased before lexing.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:all|none|keep|score|yes|no|y|n|quit|q)\b`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-z_!]+`},
	{Name: "Punct", Pattern: `[,]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

func build[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}

var (
	retentionParser = build[RetentionInput]()
	categoryParser  = build[CategoryInput]()
	numberParser    = build[NumberInput]()
	confirmParser   = build[ConfirmInput]()
)
