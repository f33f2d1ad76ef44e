package data

// Manifest is the set of dice game definitions loaded at startup.
type Manifest struct {
	Games map[string]GameDef `yaml:"games"`
}

// GameDef describes one game: display text, sizes and its scoring formulas.
type GameDef struct {
	Title    string            `yaml:"title"`
	Summary  string            `yaml:"summary"`
	Dice     int               `yaml:"dice"`
	Attempts int               `yaml:"attempts"`
	Rounds   int               `yaml:"rounds"`
	Rules    map[string]string `yaml:"rules"` // CEL expressions
}

// Rule returns the named formula of a game.
func (g GameDef) Rule(name string) (string, bool) {
	expr, ok := g.Rules[name]
	return expr, ok && expr != ""
}
