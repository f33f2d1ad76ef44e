package yahtzee

// Tier is the commentary bracket of a final score.
type Tier int

const (
	TierKeepPracticing Tier = iota
	TierGood
	TierGreat
	TierExcellent
)

var tierText = [...]struct{ name, comment string }{
	TierKeepPracticing: {"keep practicing", "Keep practicing - you'll improve!"},
	TierGood:           {"good", "GOOD GAME! Nice work!"},
	TierGreat:          {"great", "GREAT JOB! Very solid game!"},
	TierExcellent:      {"excellent", "EXCELLENT! You're a Yahtzee master!"},
}

func (t Tier) String() string {
	if t < TierKeepPracticing || t > TierExcellent {
		return "unknown"
	}
	return tierText[t].name
}

// Comment is the line printed under the final score.
func (t Tier) Comment() string {
	if t < TierKeepPracticing || t > TierExcellent {
		return ""
	}
	return tierText[t].comment
}

// Classify maps a grand total onto its tier: [300,∞) excellent, [250,300)
// great, [200,250) good, anything lower keep practicing.
func Classify(grandTotal int) Tier {
	switch {
	case grandTotal >= 300:
		return TierExcellent
	case grandTotal >= 250:
		return TierGreat
	case grandTotal >= 200:
		return TierGood
	default:
		return TierKeepPracticing
	}
}

// Result is the derived tally of a scorecard. It is never stored.
type Result struct {
	Upper int
	Bonus int
	Lower int
	Grand int
	Tier  Tier
}

// ResultOf derives the result from the current state of card.
func ResultOf(card *Scorecard) Result {
	r := Result{
		Upper: card.UpperTotal(),
		Bonus: card.Bonus(),
		Lower: card.LowerTotal(),
	}
	r.Grand = r.Upper + r.Bonus + r.Lower
	r.Tier = Classify(r.Grand)
	return r
}
