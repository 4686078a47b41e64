package cli

import (
	"fmt"
	"strconv"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/pkg/isoweek"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <person|group>",
	Short: "Mark every task of a person or monthly group as done",
	Long: `Mark every task of a person this week as done, or of a monthly group
with --monthly. Groups are named by their members joined with "+", e.g. NA+OL.`,
	Args: cobra.ExactArgs(1),
	RunE: runMark,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <person> <category> <index>",
	Short: "Flip one weekly task",
	Args:  cobra.ExactArgs(3),
	RunE:  runToggle,
}

func init() {
	addDateFlags(markCmd)
	markCmd.Flags().Bool("monthly", false, "Mark a monthly group instead of a person")
	markCmd.Flags().Bool("undo", false, "Mark as not done")

	addDateFlags(toggleCmd)
	toggleCmd.Flags().Bool("monthly", false, "Flip a monthly task; person is then the group")
}

func runMark(cmd *cobra.Command, args []string) error {
	date, err := dateFromFlags(cmd)
	if err != nil {
		return err
	}
	monthly, _ := cmd.Flags().GetBool("monthly")
	undo, _ := cmd.Flags().GetBool("undo")

	client, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	board, err := client.Board(cmd.Context(), date)
	if err != nil {
		return err
	}

	period := domain.PeriodWeekly
	if monthly {
		period = domain.PeriodMonthly
	}

	keys := board.Keys(period, args[0])
	if len(keys) == 0 {
		return fmt.Errorf("%s has no %s tasks in %s", args[0], period, board.Week.Key)
	}

	client.SetAll(keys, !undo)
	client.Wait()

	fmt.Fprintf(cmd.OutOrStdout(), "Marked %d tasks for %s in %s\n", len(keys), args[0], board.Week.Key)
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	date, err := dateFromFlags(cmd)
	if err != nil {
		return err
	}
	monthly, _ := cmd.Flags().GetBool("monthly")

	index, err := strconv.Atoi(args[2])
	if err != nil || index < 0 {
		return fmt.Errorf("invalid index %q", args[2])
	}

	period := domain.PeriodWeekly
	if monthly {
		period = domain.PeriodMonthly
	}
	key := entity.TaskKey{
		Week:     isoweek.KeyOf(date),
		Period:   period,
		Assignee: args[0],
		Category: args[1],
		Index:    index,
	}
	if reason := key.Check(); reason != "" {
		return fmt.Errorf("invalid task: %s", reason)
	}

	client, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	if err := client.Load(cmd.Context()); err != nil {
		return err
	}

	done := client.Toggle(key)
	client.Wait()

	state := "not done"
	if done {
		state = "done"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", key.ID(), state)
	return nil
}
