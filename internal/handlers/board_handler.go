package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/pkg/isoweek"
	"github.com/gin-gonic/gin"
)

func (h *Handler) handleBoard(c *gin.Context) {
	date, err := h.resolveDate(c.Query("date"), c.Query("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week"})
		return
	}

	board, err := h.board.Week(c.Request.Context(), date)
	if err != nil {
		log.Printf("Failed to build board: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build board"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// resolveDate prefers date over week and falls back to now.
func (h *Handler) resolveDate(date, week string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	switch {
	case date != "":
		t, err = time.ParseInLocation("2006-01-02", date, h.cfg.Location)
	case week != "":
		t, err = isoweek.Parse(week, h.cfg.Location)
	default:
		t = h.cfg.Now().In(h.cfg.Location)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidWeek, err)
	}
	return t, nil
}

func (h *Handler) handleMonthly(c *gin.Context) {
	plan, err := h.allocator.Plan(c.Request.Context())
	h.respondPlan(c, plan, err)
}

func (h *Handler) handleMonthlySwap(c *gin.Context) {
	plan, err := h.allocator.SwapAssignment(c.Request.Context())
	h.respondPlan(c, plan, err)
}

func (h *Handler) handleMonthlyReset(c *gin.Context) {
	plan, err := h.allocator.ResetGroups(c.Request.Context())
	h.respondPlan(c, plan, err)
}

func (h *Handler) respondPlan(c *gin.Context, plan entity.MonthlyPlan, err error) {
	if err != nil {
		log.Printf("Failed to resolve monthly groups: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve monthly groups"})
		return
	}
	c.JSON(http.StatusOK, plan)
}
