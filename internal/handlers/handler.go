package handlers

import (
	"time"

	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/gin-gonic/gin"
)

type Config struct {
	CookieSecure bool
	SessionTTL   time.Duration
	// Location resolves ?date= and ?week= queries; nil means time.Local
	Location *time.Location
	Now      func() time.Time

	// SlackSigningSecret enables POST /slack/commands when set
	SlackSigningSecret string
}

type Handler struct {
	taskState contract.TaskStateService
	board     contract.BoardService
	allocator contract.AllocatorService
	auth      contract.AuthService
	cfg       Config
}

func New(taskState contract.TaskStateService, board contract.BoardService, allocator contract.AllocatorService, auth contract.AuthService, cfg Config) *Handler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Handler{
		taskState: taskState,
		board:     board,
		allocator: allocator,
		auth:      auth,
		cfg:       cfg,
	}
}

// Register mounts every route behind the session guard.
func (h *Handler) Register(router *gin.Engine) {
	router.Use(h.Guard())

	router.GET("/health", h.handleHealth)
	router.GET("/login", h.handleLoginPage)
	router.GET("/", h.handleBoardPage)

	if h.cfg.SlackSigningSecret != "" {
		router.POST("/slack/commands", h.handleSlashCommand)
	}

	api := router.Group("/api")
	{
		api.GET("/task", h.handleGetTasks)
		api.POST("/task", h.handlePostTasks)

		api.POST("/auth", h.handleLogin)
		api.DELETE("/auth", h.handleLogout)

		api.GET("/board", h.handleBoard)

		api.GET("/monthly", h.handleMonthly)
		api.POST("/monthly/swap", h.handleMonthlySwap)
		api.POST("/monthly/reset", h.handleMonthlyReset)
	}
}

// NewRouter returns a gin engine with request logging, recovery and all routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	h.Register(router)
	return router
}
