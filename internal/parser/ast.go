package parser

// RetentionInput is the answer to "which dice do you keep?":
//
//	[keep] all | none | <pos> [,] <pos> ...
type RetentionInput struct {
	Prefix    bool  `parser:"@\"keep\"?"`
	All       bool  `parser:"( @\"all\""`
	None      bool  `parser:"| @\"none\""`
	Positions []string `parser:"| @Int ( \",\"? @Int )* )"`
}

// CategoryInput picks a category by menu number or by name:
//
//	[score] <1-13> | [score] <name words>
type CategoryInput struct {
	Prefix   bool     `parser:"@\"score\"?"`
	Position *string  `parser:"( @Int"`
	Name     []string `parser:"| @(Ident|Keyword)+ )"`
}

// NumberInput is a bare integer answer (dice counts, targets).
type NumberInput struct {
	Value int `parser:"@Int"`
}

// ConfirmInput is a yes/no answer; "quit" counts as no.
type ConfirmInput struct {
	Yes bool `parser:"( @(\"y\"|\"yes\")"`
	No  bool `parser:"| @(\"n\"|\"no\"|\"quit\"|\"q\") )"`
}
