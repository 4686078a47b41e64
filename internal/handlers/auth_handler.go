package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/gin-gonic/gin"
)

// publicPaths skip the session check. Slash commands are verified by their
// signature instead.
var publicPaths = map[string]bool{
	"/login":          true,
	"/api/auth":       true,
	"/health":         true,
	"/slack/commands": true,
}

func (h *Handler) handleLogin(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	// a missing or non-string password counts as empty
	password, _ := req["password"].(string)

	token, _, err := h.auth.Login(c.Request.Context(), password)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server not configured"})
		return
	case errors.Is(err, domain.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	case err != nil:
		log.Printf("Failed to log in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	h.setAuthCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(domain.AuthCookieName); err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			log.Printf("Failed to revoke session: %v", err)
		}
	}

	h.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(domain.AuthCookieName, value, maxAge, "/", "", h.cfg.CookieSecure, true)
}

// Guard lets public paths through and requires a valid session elsewhere.
// API callers get a 401, browsers are redirected to the login page.
func (h *Handler) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if publicPaths[path] {
			c.Next()
			return
		}

		token, err := c.Cookie(domain.AuthCookieName)
		if err == nil && token != "" {
			_, err = h.auth.Verify(c.Request.Context(), token)
		} else {
			err = domain.ErrUnauthorized
		}

		if err == nil {
			c.Next()
			return
		}
		if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrNotConfigured) {
			log.Printf("Failed to verify session: %v", err)
		}

		if strings.HasPrefix(path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, "/login")
		c.Abort()
	}
}
