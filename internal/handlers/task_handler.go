package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

const maxBodySize = 1 << 20 // 1MB

func (h *Handler) handleGetTasks(c *gin.Context) {
	filter := entity.TaskFilter{
		Week:   c.Query("week"),
		Period: c.Query("period"),
	}

	tasks, err := h.taskState.Snapshot(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Failed to read tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read tasks"})
		return
	}
	if tasks == nil {
		tasks = map[string]entity.TaskRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) handlePostTasks(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	body, err := c.GetRawData()
	if err != nil {
		invalidPayload(c, &domain.ValidationError{Reason: domain.ReasonMalformed})
		return
	}

	inputs, err := entity.ParseTaskInputs(body)
	if err != nil {
		invalidPayload(c, err)
		return
	}

	count, err := h.taskState.Put(c.Request.Context(), inputs)
	if errors.Is(err, domain.ErrInvalidPayload) {
		invalidPayload(c, err)
		return
	}
	if err != nil {
		log.Printf("Failed to store tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "count": count})
}

func invalidPayload(c *gin.Context, err error) {
	resp := gin.H{"error": "Invalid payload"}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		resp["reason"] = vErr.Reason
		resp["item"] = vErr.Item
	}

	c.JSON(http.StatusBadRequest, resp)
}
