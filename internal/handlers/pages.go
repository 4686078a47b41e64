package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/login.html
var loginPage []byte

//go:embed static/board.html
var boardPage []byte

func (h *Handler) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) handleLoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", loginPage)
}

func (h *Handler) handleBoardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", boardPage)
}
