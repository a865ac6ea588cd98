package main

import (
	"fmt"
	"time"

	"dames/engine"
)

type config struct {
	games int
	seed  uint64
}

func main() {
	runSelfPlay(config{games: 10, seed: uint64(time.Now().UnixNano())})
}

// runSelfPlay executes random-vs-random games as a smoke check of the rule
// engine and prints the outcome of each.
func runSelfPlay(cfg config) {
	fmt.Printf("Running %d self-play games...\n", cfg.games)
	for i := 0; i < cfg.games; i++ {
		white := engine.NewRandomPlayer(cfg.seed + uint64(2*i))
		black := engine.NewRandomPlayer(cfg.seed + uint64(2*i+1))

		e := engine.LocalEngine(white, black)
		winner, turns := e.Run()

		if winner != nil {
			fmt.Printf("Game %d over after %d turns! Winner: %s\n", i+1, turns, winner)
		} else {
			fmt.Printf("Game %d stopped after %d turns (no winner)\n", i+1, turns)
		}
	}
	fmt.Printf("Finished self-play.\n")
}
