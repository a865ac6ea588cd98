package engine

import (
	"dames/game"

	"github.com/rs/zerolog/log"
)

// MaxTurns bounds degenerate games where neither side can force a capture.
const MaxTurns = 500

// Player chooses one of the offered candidates. Implementations must return
// a candidate from the slice they were given; anything else is a programming
// error, not game input.
type Player interface {
	ChooseMove(state *game.GameState, candidates []game.Candidate) game.Candidate
}

// Update captures one applied move for collaborators replaying the match.
type Update struct {
	Move  game.MoveRecord
	State *game.GameState
	Hash  game.StateHash
}

type Engine struct {
	State   *game.GameState
	Players map[game.Color]Player
	Updates []Update
}

// LocalEngine sets up a match between two players at the starting position.
func LocalEngine(white, black Player) *Engine {
	return &Engine{
		State: game.NewGameState(),
		Players: map[game.Color]Player{
			game.White: white,
			game.Black: black,
		},
	}
}

// Run executes the game loop until a winner is found or the turn cutoff is
// reached. Returns the winner (nil when the match ends without one) and the
// number of turns played.
func (e *Engine) Run() (*game.Color, int) {
	log.Info().Str("player", e.State.CurrentPlayer.String()).Msg("match starting")

	// TODO: detect draws by repetition (the Update hashes are enough)
	// instead of relying on the turn cutoff.
	turn := 0
	for !e.State.GameOver && turn < MaxTurns {
		current := e.State.CurrentPlayer

		candidates := e.State.LegalMoves()
		if len(candidates) == 0 {
			// The side to move is blocked; no rule covers this, so the
			// match is abandoned without a winner.
			log.Info().Str("player", current.String()).Int("turns", turn).
				Msg("no legal moves, match abandoned")
			return nil, turn
		}

		choice := e.Players[current].ChooseMove(e.State, candidates)

		if !e.State.Select(choice.From.Row, choice.From.Col) {
			panic("player chose an unselectable piece")
		}
		if !e.State.Move(choice.To.Row, choice.To.Col) {
			panic("player chose an illegal destination")
		}

		e.Updates = append(e.Updates, Update{
			Move:  *e.State.LastMove,
			State: e.State.Copy(),
			Hash:  e.State.Hash(),
		})
		turn++
	}

	if e.State.Winner != nil {
		log.Info().Str("winner", e.State.Winner.String()).Int("turns", turn).
			Msg("match over")
		return e.State.Winner, turn
	}
	log.Info().Int("turns", turn).Msg("turn cutoff reached, no winner")
	return nil, turn
}
