package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// GameState is the per-match turn controller. It owns the board, enforces
// turn order and the forced-capture rule at the selection boundary, applies
// promotion, and detects the winner. Select and Move are boolean guards:
// illegal input is a normal rejected operation, never a panic.
type GameState struct {
	Board             *Board
	CurrentPlayer     Color
	Selected          *Square
	ValidMoves        map[Square]CaptureChain
	CapturesAvailable bool
	PieceCount        map[Color]int
	GameOver          bool
	Winner            *Color
	LastMove          *MoveRecord
}

// NewGameState initializes and returns a new GameState at the standard
// starting position, White to move.
func NewGameState() *GameState {
	gs := &GameState{Board: NewBoard()}
	gs.clear()
	return gs
}

// Reset reinitializes the board and every counter to match start.
func (gs *GameState) Reset() {
	gs.Board.Reset()
	gs.clear()
}

func (gs *GameState) clear() {
	gs.CurrentPlayer = White
	gs.Selected = nil
	gs.ValidMoves = map[Square]CaptureChain{}
	gs.CapturesAvailable = false
	gs.PieceCount = map[Color]int{White: 20, Black: 20}
	gs.GameOver = false
	gs.Winner = nil
	gs.LastMove = nil
}

// Select picks the piece at (row, col) for the current player and computes
// its legal destinations. Re-selecting the selected square deselects and
// returns false. Selection fails, leaving state unchanged, for empty
// squares, opponent pieces, and pieces barred by the forced-capture rule.
func (gs *GameState) Select(row, col int) bool {
	sq := Square{row, col}
	if gs.Selected != nil && *gs.Selected == sq {
		gs.Selected = nil
		gs.ValidMoves = map[Square]CaptureChain{}
		return false
	}

	// Forced capture is checked board-wide, not only per piece.
	gs.CapturesAvailable = gs.anyCaptureAvailable()

	p := gs.Board.Piece(row, col)
	if p == nil || p.Color != gs.CurrentPlayer {
		return false
	}
	if gs.CapturesAvailable && !gs.canCapture(sq) {
		return false
	}

	gs.Selected = &sq
	gs.ValidMoves = gs.Board.ValidMoves(sq, gs.CurrentPlayer)
	return true
}

// Move plays the selected piece to (row, col). It applies the chain's
// captures, relocates the piece, promotes a man landing on the back rank,
// clears the selection, detects the winner, and hands the turn to the other
// side. Returns false, mutating nothing, when no piece is selected or the
// destination is not among the legal ones.
func (gs *GameState) Move(row, col int) bool {
	if gs.Selected == nil {
		return false
	}
	to := Square{row, col}
	chain, ok := gs.ValidMoves[to]
	if !ok {
		return false
	}
	from := *gs.Selected

	p := gs.Board.Piece(from.Row, from.Col)
	if p == nil {
		return false
	}

	record := &MoveRecord{
		Player:   gs.CurrentPlayer,
		From:     from,
		To:       to,
		Rank:     p.Rank,
		Captures: chain,
	}

	opponent := gs.CurrentPlayer.Opponent()
	for _, captured := range chain {
		gs.Board.RemovePiece(captured.Row, captured.Col)
		gs.PieceCount[opponent]--
	}

	gs.Board.MovePiece(from, to)

	// Promotion is decided here, once, at the final landing.
	p = gs.Board.Piece(to.Row, to.Col)
	if p.Rank == Man {
		if (p.Color == White && to.Row == 0) || (p.Color == Black && to.Row == BoardSize-1) {
			p.Rank = King
			record.Promoted = true
		}
	}

	gs.LastMove = record
	gs.Selected = nil
	gs.ValidMoves = map[Square]CaptureChain{}

	if gs.PieceCount[Black] == 0 {
		winner := White
		gs.GameOver = true
		gs.Winner = &winner
	} else if gs.PieceCount[White] == 0 {
		winner := Black
		gs.GameOver = true
		gs.Winner = &winner
	}

	// The turn switches even on the ending move; callers check GameOver
	// before issuing further commands.
	gs.CurrentPlayer = opponent
	return true
}

// LegalMoves enumerates every move open to the current player under the
// forced-capture rule, without touching the selection. Collaborators use it
// to list candidates; the returned chains alias the board's computed maps
// and must be treated as read-only.
func (gs *GameState) LegalMoves() []Candidate {
	forced := gs.anyCaptureAvailable()
	var moves []Candidate
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := gs.Board.Piece(row, col)
			if p == nil || p.Color != gs.CurrentPlayer {
				continue
			}
			sq := Square{row, col}
			if forced && !gs.canCapture(sq) {
				continue
			}
			for dest, chain := range gs.Board.ValidMoves(sq, gs.CurrentPlayer) {
				moves = append(moves, Candidate{From: sq, To: dest, Captures: chain})
			}
		}
	}
	return moves
}

// anyCaptureAvailable scans the whole board for a current-player piece with
// a capture open.
func (gs *GameState) anyCaptureAvailable() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := gs.Board.Piece(row, col)
			if p != nil && p.Color == gs.CurrentPlayer && gs.canCapture(Square{row, col}) {
				return true
			}
		}
	}
	return false
}

func (gs *GameState) canCapture(sq Square) bool {
	return len(gs.Board.Captures(sq)) > 0
}

// StateView is a read-only snapshot of the match for display collaborators.
type StateView struct {
	CurrentPlayer Color
	WhitePieces   int
	BlackPieces   int
	Board         map[Square]Piece
	Selected      *Square
	ValidMoves    []Square
	GameOver      bool
	Winner        *Color
}

// Snapshot assembles a StateView sharing no mutable state with the engine.
func (gs *GameState) Snapshot() StateView {
	view := StateView{
		CurrentPlayer: gs.CurrentPlayer,
		WhitePieces:   gs.PieceCount[White],
		BlackPieces:   gs.PieceCount[Black],
		Board:         gs.Board.Snapshot(),
		GameOver:      gs.GameOver,
	}
	if gs.Selected != nil {
		sq := *gs.Selected
		view.Selected = &sq
	}
	if gs.Winner != nil {
		winner := *gs.Winner
		view.Winner = &winner
	}
	for dest := range gs.ValidMoves {
		view.ValidMoves = append(view.ValidMoves, dest)
	}
	return view
}

// Copy returns a deep value copy of the state. Collaborators exploring
// hypothetical futures work on copies; the authoritative state is never
// handed out for mutation.
func (gs *GameState) Copy() *GameState {
	pieceCount := make(map[Color]int, len(gs.PieceCount))
	for color, n := range gs.PieceCount {
		pieceCount[color] = n
	}

	validMoves := make(map[Square]CaptureChain, len(gs.ValidMoves))
	for dest, chain := range gs.ValidMoves {
		chainCopy := make(CaptureChain, len(chain))
		copy(chainCopy, chain)
		validMoves[dest] = chainCopy
	}

	c := &GameState{
		Board:             gs.Board.Copy(),
		CurrentPlayer:     gs.CurrentPlayer,
		ValidMoves:        validMoves,
		CapturesAvailable: gs.CapturesAvailable,
		PieceCount:        pieceCount,
		GameOver:          gs.GameOver,
	}
	if gs.Selected != nil {
		sq := *gs.Selected
		c.Selected = &sq
	}
	if gs.Winner != nil {
		winner := *gs.Winner
		c.Winner = &winner
	}
	if gs.LastMove != nil {
		record := *gs.LastMove
		record.Captures = make(CaptureChain, len(gs.LastMove.Captures))
		copy(record.Captures, gs.LastMove.Captures)
		c.LastMove = &record
	}
	return c
}

// Hash folds the board contents and the side to move into a 64-bit identity.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := gs.Board.Piece(row, col)
			if p == nil {
				binary.Write(hasher, binary.LittleEndian, int64(-1))
				continue
			}
			binary.Write(hasher, binary.LittleEndian, int64(p.Color)<<1|int64(p.Rank))
		}
	}

	return StateHash(hasher.Sum64())
}
