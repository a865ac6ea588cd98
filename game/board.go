package game

// BoardSize is the edge length of the international draughts board.
const BoardSize = 10

// Square addresses a board cell by row and column.
type Square struct {
	Row, Col int
}

// CaptureChain is the ordered list of squares whose pieces are removed when
// the associated destination is played. The order matches the sequence of
// jumps along the chain.
type CaptureChain []Square

// The four diagonal directions, scanned in a fixed order so duplicate
// destinations overwrite deterministically per direction.
var diagonals = [4]Square{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Board is the authoritative 10x10 grid. Only squares where row+col is odd
// are ever occupied in a reachable game.
type Board struct {
	grid [BoardSize][BoardSize]*Piece
}

// NewBoard returns a board at the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the starting position: Black men on the dark squares of
// rows 0-3, White men on the dark squares of rows 6-9.
func (b *Board) Reset() {
	b.grid = [BoardSize][BoardSize]*Piece{}
	for row := 0; row < 4; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 1 {
				b.grid[row][col] = &Piece{Color: Black, Rank: Man}
			}
		}
	}
	for row := 6; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 1 {
				b.grid[row][col] = &Piece{Color: White, Rank: Man}
			}
		}
	}
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Piece returns the piece at (row, col), or nil when the square is empty or
// out of range. The board never panics on out-of-range input.
func (b *Board) Piece(row, col int) *Piece {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.grid[row][col]
}

// SetPiece places p at (row, col). Out-of-range coordinates are a no-op.
func (b *Board) SetPiece(row, col int, p *Piece) {
	if b.InBounds(row, col) {
		b.grid[row][col] = p
	}
}

// RemovePiece empties (row, col). Out-of-range coordinates are a no-op.
func (b *Board) RemovePiece(row, col int) {
	if b.InBounds(row, col) {
		b.grid[row][col] = nil
	}
}

// MovePiece relocates the piece on from to to and clears from. It fails,
// mutating nothing, when from holds no piece. MovePiece never promotes:
// promotion is a controller decision applied after the move.
func (b *Board) MovePiece(from, to Square) bool {
	p := b.Piece(from.Row, from.Col)
	if p == nil {
		return false
	}
	b.SetPiece(to.Row, to.Col, p)
	b.RemovePiece(from.Row, from.Col)
	return true
}

// ValidMoves returns every legal destination for the piece at sq, keyed by
// landing square. When any capture exists only the capture map is returned:
// captures are mandatory for this piece. A piece not belonging to color
// yields an empty map.
func (b *Board) ValidMoves(sq Square, color Color) map[Square]CaptureChain {
	moves := map[Square]CaptureChain{}
	p := b.Piece(sq.Row, sq.Col)
	if p == nil || p.Color != color {
		return moves
	}

	if captures := b.Captures(sq); len(captures) > 0 {
		return captures
	}

	switch p.Rank {
	case Man:
		// Forward is toward row 0 for White, row 9 for Black.
		forward := -1
		if p.Color == Black {
			forward = 1
		}
		for _, dc := range [2]int{-1, 1} {
			row, col := sq.Row+forward, sq.Col+dc
			if b.InBounds(row, col) && b.Piece(row, col) == nil {
				moves[Square{row, col}] = CaptureChain{}
			}
		}
	case King:
		// Flying king: every empty square along each diagonal ray.
		for _, dir := range diagonals {
			row, col := sq.Row+dir.Row, sq.Col+dir.Col
			for b.InBounds(row, col) && b.Piece(row, col) == nil {
				moves[Square{row, col}] = CaptureChain{}
				row += dir.Row
				col += dir.Col
			}
		}
	}
	return moves
}

// Captures computes every capture chain open to the piece at sq, keyed by
// final landing square. Multi-jump continuations are explored recursively on
// hypothetical board copies; a destination reachable by several sequences
// keeps the last chain computed.
func (b *Board) Captures(sq Square) map[Square]CaptureChain {
	captures := map[Square]CaptureChain{}
	p := b.Piece(sq.Row, sq.Col)
	if p == nil {
		return captures
	}

	for _, dir := range diagonals {
		switch p.Rank {
		case Man:
			adjacent := Square{sq.Row + dir.Row, sq.Col + dir.Col}
			enemy := b.Piece(adjacent.Row, adjacent.Col)
			if enemy == nil || enemy.Color == p.Color {
				continue
			}
			landing := Square{adjacent.Row + dir.Row, adjacent.Col + dir.Col}
			if !b.InBounds(landing.Row, landing.Col) || b.Piece(landing.Row, landing.Col) != nil {
				continue
			}
			b.recordCapture(captures, sq, landing, adjacent)
		case King:
			// Scan outward through empty squares to the first piece.
			row, col := sq.Row+dir.Row, sq.Col+dir.Col
			for b.InBounds(row, col) && b.Piece(row, col) == nil {
				row += dir.Row
				col += dir.Col
			}
			if !b.InBounds(row, col) || b.Piece(row, col).Color == p.Color {
				continue
			}
			jumped := Square{row, col}
			// Every contiguous empty square past the enemy is a landing.
			row += dir.Row
			col += dir.Col
			for b.InBounds(row, col) && b.Piece(row, col) == nil {
				b.recordCapture(captures, sq, Square{row, col}, jumped)
				row += dir.Row
				col += dir.Col
			}
		}
	}
	return captures
}

// recordCapture registers landing with its jumped square, then extends the
// map with every continuation reachable from a hypothetical board on which
// the jump has been played. Continuations terminate because each step
// removes one opposing piece.
func (b *Board) recordCapture(captures map[Square]CaptureChain, from, landing, jumped Square) {
	captures[landing] = CaptureChain{jumped}

	next := b.Copy()
	next.MovePiece(from, landing)
	next.RemovePiece(jumped.Row, jumped.Col)
	for dest, chain := range next.Captures(landing) {
		captures[dest] = append(CaptureChain{jumped}, chain...)
	}
}

// Copy returns an independent board holding value copies of every piece.
// Mutating the copy never affects the original; the capture search relies on
// this when exploring continuations.
func (b *Board) Copy() *Board {
	c := &Board{}
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p != nil {
				piece := *p
				c.grid[row][col] = &piece
			}
		}
	}
	return c
}

// Snapshot returns the occupied squares and their piece values, for display
// collaborators. The values are copies and share nothing with the board.
func (b *Board) Snapshot() map[Square]Piece {
	snapshot := map[Square]Piece{}
	for row := range b.grid {
		for col, p := range b.grid[row] {
			if p != nil {
				snapshot[Square{row, col}] = *p
			}
		}
	}
	return snapshot
}

// Count tallies the pieces of one color.
func (b *Board) Count(color Color) int {
	count := 0
	for row := range b.grid {
		for _, p := range b.grid[row] {
			if p != nil && p.Color == color {
				count++
			}
		}
	}
	return count
}
