// Package slack parses the board's slash command and renders its messages.
package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

type CommandType string

const (
	CmdWeek    CommandType = "uge"
	CmdNext    CommandType = "næste"
	CmdMonthly CommandType = "måned"
	CmdSwap    CommandType = "byt"
	CmdHelp    CommandType = "hjælp"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdWeek}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "uge", "week":
		cmd.Type = CmdWeek
	case "næste", "naeste", "next":
		cmd.Type = CmdNext
	case "måned", "maaned", "month", "monthly":
		cmd.Type = CmdMonthly
	case "byt", "swap":
		cmd.Type = CmdSwap
	case "hjælp", "hjaelp", "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Kommandoer:*

• ` + "`/opgaver`" + ` eller ` + "`/opgaver uge`" + ` - Denne uges fordeling
• ` + "`/opgaver næste`" + ` - Næste uges fordeling
• ` + "`/opgaver måned`" + ` - Månedens grupper
• ` + "`/opgaver byt`" + ` - Byt køkken og overflader mellem grupperne
• ` + "`/opgaver hjælp`" + ` - Vis denne hjælp`
}

// FormatRotation renders a week's category to person lines and the joker.
func FormatRotation(rot entity.Rotation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧹 *Ugens opgaver* (%s)\n\n", rot.WeekKey)
	for _, a := range rot.Assignments {
		person := a.Person
		if person == "" {
			person = "ingen"
		}
		fmt.Fprintf(&b, "• %s: *%s*\n", a.Category, person)
	}
	if rot.HasJoker {
		fmt.Fprintf(&b, "\n🃏 Joker: *%s*", rot.Joker)
	}
	return b.String()
}

// FormatMonthly renders which group has which monthly category.
func FormatMonthly(plan entity.MonthlyPlan) string {
	var b strings.Builder
	b.WriteString("📅 *Månedens opgaver*\n\n")
	for _, g := range []entity.MonthlyGroup{plan.GroupA, plan.GroupB} {
		members := strings.Join(g.Members, ", ")
		if members == "" {
			members = "ingen"
		}
		fmt.Fprintf(&b, "• %s: *%s*\n", g.Category, members)
	}
	return b.String()
}
