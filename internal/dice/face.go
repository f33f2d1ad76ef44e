package dice

import "strings"

// Face is a single die face. Bust is only rolled when the bust face is enabled.
type Face int

const (
	Bust Face = iota
	One
	Two
	Three
	Four
	Five
	Six
)

// Sides is the number of numeric faces on a standard die.
const Sides = 6

var glyphs = [...]string{"☠", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Value converts a face into the number it scores. Bust is worth 0.
func (f Face) Value() int {
	if f < Bust || f > Six {
		return 0
	}
	return int(f)
}

// IsBust reports whether the face is the skull face.
func (f Face) IsBust() bool { return f == Bust }

func (f Face) String() string {
	if f < Bust || f > Six {
		return "?"
	}
	return glyphs[f]
}

// FaceOf returns the numeric face for a value in 0..6.
func FaceOf(value int) (Face, bool) {
	if value < 0 || value > Sides {
		return Bust, false
	}
	return Face(value), true
}

// Faces is an ordered group of rolled dice.
type Faces []Face

// Values returns the numeric value of every die, in roll order.
func (fs Faces) Values() []int {
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = f.Value()
	}
	return out
}

// Sum adds up the numeric values of the dice.
func (fs Faces) Sum() int {
	total := 0
	for _, f := range fs {
		total += f.Value()
	}
	return total
}

// Busts counts skull faces.
func (fs Faces) Busts() int {
	n := 0
	for _, f := range fs {
		if f.IsBust() {
			n++
		}
	}
	return n
}

// Counts returns how many dice show each value, indexed by value (0 = bust).
func (fs Faces) Counts() [Sides + 1]int {
	var counts [Sides + 1]int
	for _, f := range fs {
		counts[f.Value()]++
	}
	return counts
}

func (fs Faces) String() string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
