package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/internal/syncclient"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show this week's board from the server",
	RunE:  runStatus,
}

func init() {
	addDateFlags(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	date, err := dateFromFlags(cmd)
	if err != nil {
		return err
	}

	client, err := connect(cmd.Context())
	if err != nil {
		return err
	}

	board, err := client.Board(cmd.Context(), date)
	if err != nil {
		return err
	}

	printBoard(cmd.OutOrStdout(), board)
	return nil
}

// connect logs in with BOARD_PASSWORD against BOARD_URL.
func connect(ctx context.Context) (*syncclient.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.BoardPassword == "" {
		return nil, fmt.Errorf("BOARD_PASSWORD is not set")
	}

	client, err := syncclient.New(cfg.BoardURL, syncclient.WithDebugLogger(debugLogger()))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Login(ctx, cfg.BoardPassword); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	return client, nil
}

func printBoard(w io.Writer, b *entity.Board) {
	fmt.Fprintf(w, "Week %s (%s - %s)\n", b.Week.Key,
		b.Week.Start.Format("02 Jan"), b.Week.End.Format("02 Jan"))

	fmt.Fprintf(w, "\nWeekly %d/%d\n", b.Weekly.Completed, b.Weekly.Total)
	for _, card := range b.Weekly.Cards {
		title := card.Person
		if card.Joker {
			title += " (joker)"
		}
		fmt.Fprintf(w, "\n  %s%s\n", title, doneMark(card.AllDone))
		for _, c := range card.Categories {
			fmt.Fprintf(w, "    %s\n", c.Category)
			printTasks(w, c.Tasks, "      ")
		}
	}

	fmt.Fprintf(w, "\nMonthly %d/%d\n", b.Monthly.Completed, b.Monthly.Total)
	for _, g := range b.Monthly.Groups {
		fmt.Fprintf(w, "\n  %s: %s%s\n", g.Category, strings.Join(g.Members, ", "), doneMark(g.AllDone))
		printTasks(w, g.Tasks, "    ")
	}
}

func printTasks(w io.Writer, tasks []entity.TaskItem, indent string) {
	for _, t := range tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s%s %d. %s\n", indent, box, t.Index, t.Text)
	}
}

func doneMark(done bool) string {
	if done {
		return " ✓"
	}
	return ""
}
