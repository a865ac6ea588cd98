package engine

import (
	"dames/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer picks uniformly among the offered candidates. It carries no
// position knowledge; real opponents live outside this module and only
// consume the engine's outputs.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) ChooseMove(_ *game.GameState, candidates []game.Candidate) game.Candidate {
	return candidates[p.rng.Intn(len(candidates))]
}
