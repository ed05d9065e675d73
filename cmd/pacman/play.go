package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a maze",
	Long: `Start playing the specified Pac-Man variant (default: pacman).

  pacman          - a fresh maze generated from the seed
  pacman_classic  - the arcade layout with a side tunnel

Controls:
  Arrows/WASD  - Steer (turns are buffered until the next opening)
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back (when paused or after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower ghosts, longer power, gentle progression
  normal - Ghosts speed up as your score grows
  hard   - Fast ghosts, short power
  fixed  - No progression, ghosts keep their base speed

Examples:
  pacman play
  pacman play pacman_classic
  pacman play --difficulty hard --seed 42
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "pacman"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available mazes.")
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	applyGameFlags(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("game started", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, storage.NewReporter(store, logger), logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game aborted", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
