// pacman is a terminal Pac-Man with generated and classic mazes.
//
// Usage:
//
//	pacman list              - List available mazes
//	pacman play [game]       - Play a maze (default: pacman)
//	pacman menu              - Start menu to pick a maze interactively
//	pacman serve             - Start SSH server for remote play
//	pacman scores <game>     - Show high scores for a maze
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible mazes and ghosts
//	--db <path>          - Set database path (default: ~/.arcade/pacman.db)
//	--config <path>      - Use a custom pacman.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Write logs to a file (default: ~/.arcade/pacman.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A terminal Pac-Man: eat every dot, grab power dots to turn the
ghosts blue, and avoid being caught.

Available commands:
  list     - Show the available mazes
  play     - Play a maze directly
  menu     - Interactive maze and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacman play
  pacman play pacman_classic --difficulty hard
  pacman menu
  pacman serve --ssh :2222
  pacman scores pacman`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pacman.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pacman.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/pacman.log", "Path to log file (empty disables logging)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger opens the log file named by --log. The terminal belongs to
// the game, so logs never go to stdout; on failure they are dropped.
// The returned closer must be called on exit.
func openLogger() (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	}

	path := expandHome(flagLogPath)
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	//nolint:errcheck // Best-effort close on exit
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// applyGameFlags passes --config and the chosen difficulty to new games.
func applyGameFlags(difficulty string) {
	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(difficulty)
}
