package handlers

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	slackcmd "github.com/diegoclair/chore-board/internal/domain/slack"
	"github.com/diegoclair/chore-board/pkg/isoweek"
	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
)

func (h *Handler) handleSlashCommand(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(c.Request.Header, h.cfg.SlackSigningSecret)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		c.JSON(http.StatusOK, createErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.handleCommand(c.Request.Context(), cmd))
}

func (h *Handler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdWeek:
		return h.handleWeek(ctx, cmd, 0)
	case slackcmd.CmdNext:
		return h.handleWeek(ctx, cmd, 1)
	case slackcmd.CmdMonthly:
		plan, err := h.allocator.Plan(ctx)
		if err != nil {
			log.Printf("Failed to get monthly plan: %v", err)
			return createErrorResponse("Kunne ikke hente månedens grupper")
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: slackcmd.FormatMonthly(plan)}
	case slackcmd.CmdSwap:
		plan, err := h.allocator.SwapAssignment(ctx)
		if err != nil {
			log.Printf("Failed to swap monthly assignment: %v", err)
			return createErrorResponse("Kunne ikke bytte opgaverne")
		}
		return &slack.Msg{ResponseType: slack.ResponseTypeInChannel, Text: "🔄 Byttet!\n\n" + slackcmd.FormatMonthly(plan)}
	case slackcmd.CmdHelp:
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: slackcmd.GetHelpText()}
	default:
		return createErrorResponse("Ukendt kommando")
	}
}

// handleWeek answers with the rotation of the current week plus ahead weeks,
// or of the week named in the first argument.
func (h *Handler) handleWeek(ctx context.Context, cmd *slackcmd.Command, ahead int) *slack.Msg {
	date := h.cfg.Now().In(h.cfg.Location).AddDate(0, 0, 7*ahead)
	if len(cmd.Args) > 0 {
		parsed, err := isoweek.Parse(cmd.Args[0], h.cfg.Location)
		if err != nil {
			return createErrorResponse("Ugyldig uge, brug fx `2024-W10`")
		}
		date = parsed
	}

	board, err := h.board.Week(ctx, date)
	if err != nil {
		log.Printf("Failed to build board for slack: %v", err)
		return createErrorResponse("Kunne ikke hente ugens opgaver")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slackcmd.FormatRotation(board.Weekly.Rotation),
	}
}

func createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}
