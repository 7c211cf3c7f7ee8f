package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hexmatch/internal/platform/tui"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

var (
	flagScoresTUI     bool
	flagScoresLevel   string
	flagScoresLimit   int
	flagScoresClear   bool
	flagScoresSession string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game. Without a game, shows a summary
of every game that has scores. With --session, lists the games of one
menu session in the order they were played.

Examples:
  hexmatch scores
  hexmatch scores hexmatch
  hexmatch scores hexmatch --level spiral
  hexmatch scores hexmatch --tui
  hexmatch scores squarematch --clear
  hexmatch scores --session 3f2a9c1e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show scores for this level")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "Show the games of one session")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if _, err := requireGame(gameID); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	case flagScoresSession != "":
		return printSession(store, flagScoresSession)
	case gameID == "":
		return printAllStats(store)
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	default:
		return printScores(store, gameID)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopLevelScores(gameID, flagScoresLevel, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := game.Title()
	if flagScoresLevel != "" {
		title += " / " + flagScoresLevel
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexmatch play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-5s  %s\n", "Rank", "Score", "Level", "Stones", "Moves", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-6s  %-5s  %s\n", "----", "-----", "-----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-10s  %-6d  %-5d  %s\n",
			i+1, e.Score, e.Level, e.Stones, e.MovesUsed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f  Stones: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Stones)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-18s  %-6s  %-10s  %-10s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Stones", "Last played")
	fmt.Printf("  %-18s  %-6s  %-10s  %-10s  %-8s  %s\n", "----", "-----", "----", "-------", "------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %-6d  %-10d  %-10.0f  %-8d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.Stones, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSession(store *storage.Store, sessionID string) error {
	entries, err := store.SessionScores(sessionID)
	if err != nil {
		return fmt.Errorf("retrieving session: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No scores recorded for session %s.\n", sessionID)
		return nil
	}

	fmt.Printf("Session %s\n", sessionID)
	fmt.Println()
	fmt.Printf("  %-3s  %-18s  %-10s  %-10s  %-6s  %-5s  %s\n", "#", "Game", "Level", "Score", "Stones", "Moves", "Date")
	fmt.Printf("  %-3s  %-18s  %-10s  %-10s  %-6s  %-5s  %s\n", "-", "----", "-----", "-----", "------", "-----", "----")
	total := 0
	for i, e := range entries {
		total += e.Score
		fmt.Printf("  %-3d  %-18s  %-10s  %-10d  %-6d  %-5d  %s\n",
			i+1, e.GameID, e.Level, e.Score, e.Stones, e.MovesUsed, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("Games: %d  Total: %d\n", len(entries), total)
	return nil
}
