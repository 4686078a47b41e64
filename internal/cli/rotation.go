package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/internal/domain/service"
	"github.com/diegoclair/chore-board/internal/settingsfile"
	"github.com/diegoclair/chore-board/pkg/isoweek"
	"github.com/spf13/cobra"
)

var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Show who has which category this week",
	Long: `Show the weekly rotation and the monthly groups, computed locally from the catalog.

Monthly groups are kept in this machine's settings file, so --swap and
--reset-groups only affect this machine.`,
	RunE: runRotation,
}

func init() {
	addDateFlags(rotationCmd)
	rotationCmd.Flags().String("catalog", "", "Catalog file (default CATALOG_PATH)")
	rotationCmd.Flags().String("settings", "", "Settings file (default "+settingsfile.DefaultPath()+")")
	rotationCmd.Flags().Bool("swap", false, "Swap which monthly group cleans surfaces")
	rotationCmd.Flags().Bool("reset-groups", false, "Generate new monthly groups")
}

func runRotation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date, err := dateFromFlags(cmd)
	if err != nil {
		return err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	settingsPath, _ := cmd.Flags().GetString("settings")
	allocator := service.NewAllocator(settingsfile.New(settingsPath), c.Persons, service.MonthlyConfig{
		PreferredGroupA: cfg.MonthlyGroupA,
		PreferredGroupB: cfg.MonthlyGroupB,
	}, nil)

	ctx := cmd.Context()
	var plan entity.MonthlyPlan
	swap, _ := cmd.Flags().GetBool("swap")
	reset, _ := cmd.Flags().GetBool("reset-groups")
	switch {
	case reset:
		plan, err = allocator.ResetGroups(ctx)
	case swap:
		plan, err = allocator.SwapAssignment(ctx)
	default:
		plan, err = allocator.Plan(ctx)
	}
	if err != nil {
		return err
	}

	printRotation(cmd.OutOrStdout(), service.NewRotationEngine(c).ForDate(date), plan)
	return nil
}

func printRotation(w io.Writer, rot entity.Rotation, plan entity.MonthlyPlan) {
	fmt.Fprintf(w, "Week %s\n\n", rot.WeekKey)
	for _, a := range rot.Assignments {
		person := a.Person
		if person == "" {
			person = "-"
		}
		fmt.Fprintf(w, "  %-14s %s\n", a.Category, person)
	}
	if rot.HasJoker {
		fmt.Fprintf(w, "  %-14s %s\n", "joker", rot.Joker)
	}

	fmt.Fprintf(w, "\nMonthly\n\n")
	for _, g := range []entity.MonthlyGroup{plan.GroupA, plan.GroupB} {
		fmt.Fprintf(w, "  %-14s %s\n", g.Category, strings.Join(g.Members, ", "))
	}
}

func addDateFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "Any day of the week to show (YYYY-MM-DD)")
	cmd.Flags().String("week", "", "ISO week to show (YYYY-Www)")
}

func dateFromFlags(cmd *cobra.Command) (time.Time, error) {
	date, _ := cmd.Flags().GetString("date")
	week, _ := cmd.Flags().GetString("week")

	switch {
	case date != "":
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date: %w", err)
		}
		return t, nil
	case week != "":
		t, err := isoweek.Parse(week, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --week: %w", err)
		}
		return t, nil
	default:
		return time.Now(), nil
	}
}
