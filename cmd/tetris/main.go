package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rilder-almeida/termtris/cmd/tetris/board"
	"github.com/rilder-almeida/termtris/cmd/tetris/config"
	"github.com/rilder-almeida/termtris/cmd/tetris/game"
)

var (
	seed       int64
	randomizer string
)

func init() {
	flag.Int64Var(&seed, "seed", 0, "seed for the piece randomizer (0 uses the current time)")
	flag.StringVar(&randomizer, "randomizer", "", "piece randomizer policy: uniform or sevenbag")

	flag.Parse()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Load the configuration, letting flags override the environment.

	cfg := config.Load()

	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if randomizer != "" {
		cfg.Randomizer = randomizer
	}

	policy, err := game.ParsePolicy(cfg.Randomizer)
	if err != nil {
		return fmt.Errorf("parse randomizer: %w", err)
	}

	// -------------------------------------------------------------------------
	// Construct the engine.

	g, err := game.New(game.Config{
		Width:   cfg.BoardWidth,
		Height:  cfg.BoardHeight,
		Preview: cfg.Preview,
		Policy:  policy,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	// -------------------------------------------------------------------------
	// Create the board and initialize the display.

	b, err := board.New(g, cfg.Debug)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input.

	<-b.Run()

	return nil
}
