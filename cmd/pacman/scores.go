package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagClearScores     bool
	flagScoreDifficulty string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a maze",
	Long: `Display the top 10 high scores for the specified maze.

Examples:
  pacman scores pacman
  pacman scores pacman_classic
  pacman scores pacman --only hard
  pacman scores pacman --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the maze")
	scoresCmd.Flags().StringVar(&flagScoreDifficulty, "only", "", "Show only games played on this difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available mazes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoreDifficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	heading := "High Scores - " + title
	if flagScoreDifficulty != "" {
		heading += " (" + flagScoreDifficulty + ")"
	}
	fmt.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to set the first high score!\n", gameID)
		return
	}

	printScores(os.Stdout, scores)

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Max level: %d  Games: %d  Average: %.0f\n",
			stats.HighScore, stats.MaxLevel, stats.GamesCount, stats.AvgScore)
	}
}

// printScores writes a ranked score table.
func printScores(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %-10s  %s\n",
			i+1, e.Score, e.Level, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
