package game

// Color identifies the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Rank distinguishes a man from a king. A man is promoted exactly once, by
// the controller, and a king never reverts.
type Rank int

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	if r == Man {
		return "Man"
	}
	return "King"
}

// Piece is the value held by an occupied board square.
type Piece struct {
	Color Color
	Rank  Rank
}
