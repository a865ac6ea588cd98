package game

// Candidate is one playable move for the side to move: origin, landing, and
// the ordered captures consumed on the way. An empty chain means a simple
// step.
type Candidate struct {
	From     Square
	To       Square
	Captures CaptureChain
}

// IsCapture reports whether playing the candidate removes opposing pieces.
func (c Candidate) IsCapture() bool {
	return len(c.Captures) > 0
}

// MoveRecord describes an applied move: everything a logging or analysis
// collaborator needs to reconstruct it without touching the engine. Rank is
// the rank before any promotion.
type MoveRecord struct {
	Player   Color
	From     Square
	To       Square
	Rank     Rank
	Captures CaptureChain
	Promoted bool
}
