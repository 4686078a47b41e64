package slack

import (
	"testing"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text    string
		want    CommandType
		wantErr bool
	}{
		{text: "", want: CmdWeek},
		{text: "  uge ", want: CmdWeek},
		{text: "week", want: CmdWeek},
		{text: "næste", want: CmdNext},
		{text: "NEXT", want: CmdNext},
		{text: "måned", want: CmdMonthly},
		{text: "byt", want: CmdSwap},
		{text: "help", want: CmdHelp},
		{text: "slet alt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Type)
		})
	}

	cmd, err := ParseCommand("uge 2024-W10")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-W10"}, cmd.Args)
}

func TestFormatRotation(t *testing.T) {
	rot := entity.Rotation{
		WeekKey: "2024-W12",
		Assignments: []entity.CategoryAssignment{
			{Category: "køkken", Person: "C"},
			{Category: "bad", Person: "A"},
			{Category: "stue"},
		},
		Joker:    "B",
		HasJoker: true,
	}

	msg := FormatRotation(rot)
	assert.Contains(t, msg, "Ugens opgaver* (2024-W12)")
	assert.Contains(t, msg, "• køkken: *C*")
	assert.Contains(t, msg, "• bad: *A*")
	assert.Contains(t, msg, "• stue: *ingen*")
	assert.Contains(t, msg, "Joker: *B*")

	rot.HasJoker = false
	assert.NotContains(t, FormatRotation(rot), "Joker")
}

func TestFormatMonthly(t *testing.T) {
	plan := entity.NewMonthlyPlan(entity.MonthlyGroups{
		GroupA: []string{"NA", "OL"},
		GroupB: []string{"BA", "AL"},
	}, domain.SurfacesOnGroupA)

	msg := FormatMonthly(plan)
	assert.Contains(t, msg, "• overflader: *NA, OL*")
	assert.Contains(t, msg, "• køkken: *BA, AL*")
}

