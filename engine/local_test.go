package engine

import (
	"testing"

	"dames/game"

	"github.com/stretchr/testify/require"
)

// firstPlayer deterministically takes the first candidate offered.
type firstPlayer struct{}

func (firstPlayer) ChooseMove(_ *game.GameState, candidates []game.Candidate) game.Candidate {
	return candidates[0]
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random self-play terminates", func(t *testing.T) {
		e := LocalEngine(NewRandomPlayer(1), NewRandomPlayer(2))

		winner, turns := e.Run()

		require.LessOrEqual(t, turns, MaxTurns, "the loop must respect the turn cutoff")
		require.Greater(t, turns, 0, "the opening position always has moves")
		require.Len(t, e.Updates, turns, "one update per applied move")
		if winner != nil {
			require.True(t, e.State.GameOver, "a winner implies game over")
			require.Equal(t, *e.State.Winner, *winner)
			require.Equal(t, 0, e.State.PieceCount[winner.Opponent()],
				"the loser must have no pieces left")
		}
	})

	t.Run("near-terminal position ends in one turn", func(t *testing.T) {
		e := LocalEngine(firstPlayer{}, firstPlayer{})
		state := e.State
		clearBoard(state)
		placeCounted(state, game.White, game.Man, 6, 1)
		placeCounted(state, game.Black, game.Man, 5, 2)

		winner, turns := e.Run()

		require.NotNil(t, winner, "capturing the last piece decides the match")
		require.Equal(t, game.White, *winner)
		require.Equal(t, 1, turns)
		require.Equal(t, game.CaptureChain{{Row: 5, Col: 2}}, e.Updates[0].Move.Captures)
	})

	t.Run("blocked side abandons the match", func(t *testing.T) {
		e := LocalEngine(firstPlayer{}, firstPlayer{})
		state := e.State
		// The lone black man sits in the corner behind white men it cannot
		// jump: the landing squares are occupied or off the board.
		clearBoard(state)
		placeCounted(state, game.White, game.Man, 1, 8)
		placeCounted(state, game.White, game.Man, 2, 7)
		placeCounted(state, game.Black, game.Man, 0, 9)
		state.CurrentPlayer = game.Black

		winner, turns := e.Run()

		require.Nil(t, winner, "a blocked side yields no winner")
		require.Equal(t, 0, turns)
	})

	t.Run("updates carry independent state copies", func(t *testing.T) {
		e := LocalEngine(firstPlayer{}, firstPlayer{})
		state := e.State
		clearBoard(state)
		placeCounted(state, game.White, game.Man, 6, 1)
		placeCounted(state, game.Black, game.Man, 5, 2)

		e.Run()

		require.Len(t, e.Updates, 1)
		update := e.Updates[0]
		require.Equal(t, update.State.Hash(), update.Hash, "the hash matches the recorded state")
		update.State.Board.RemovePiece(4, 3)
		require.NotNil(t, e.State.Board.Piece(4, 3),
			"mutating a recorded state must not touch the live one")
	})
}

func clearBoard(gs *game.GameState) {
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			gs.Board.RemovePiece(row, col)
		}
	}
	gs.PieceCount = map[game.Color]int{game.White: 0, game.Black: 0}
}

func placeCounted(gs *game.GameState, color game.Color, rank game.Rank, row, col int) {
	gs.Board.SetPiece(row, col, &game.Piece{Color: color, Rank: rank})
	gs.PieceCount[color]++
}
