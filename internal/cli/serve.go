package cli

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/config"
	"github.com/diegoclair/chore-board/internal/database"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/internal/domain/service"
	"github.com/diegoclair/chore-board/internal/handlers"
	"github.com/diegoclair/chore-board/migrator/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the board server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Migrations completed successfully")

	var opts []database.Option
	if cfg.UsesRedis() {
		client, err := database.OpenRedis(ctx, cfg.StoreURL)
		if err != nil {
			return err
		}
		defer client.Close()

		log.Printf("Storing task state in redis hash %q", cfg.RedisKey)
		opts = append(opts, database.WithTaskStateRepo(database.NewRedisTaskStateRepo(client, cfg.RedisKey)))
	}
	dm := database.NewInstance(db, opts...)

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	secret, err := sessionSecret(cfg)
	if err != nil {
		return err
	}
	if cfg.SitePasswordHash == "" {
		log.Println("Warning: SITE_PASSWORD_HASH is not set, logins will fail")
	}

	// a nil interface, not a typed nil, disables announcements
	var slackClient contract.SlackClient
	if cfg.SlackBotToken != "" {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	svc := service.New(dm, service.Options{
		Catalog: c,
		Auth: service.AuthConfig{
			PasswordHash:  cfg.SitePasswordHash,
			SessionSecret: secret,
			SessionTTL:    cfg.SessionTTL,
		},
		Monthly: service.MonthlyConfig{
			PreferredGroupA: cfg.MonthlyGroupA,
			PreferredGroupB: cfg.MonthlyGroupB,
		},
		Announce: service.AnnounceConfig{
			ChannelID: cfg.SlackChannelID,
			Weekday:   cfg.AnnounceDay,
			Time:      cfg.AnnounceTime,
		},
		Slack: slackClient,
	})

	svc.Scheduler.Start()
	defer svc.Scheduler.Stop()

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := handlers.New(svc.TaskState, svc.Board, svc.Allocator, svc.Auth, handlers.Config{
		CookieSecure: cfg.CookieSecure,
		SessionTTL:   cfg.SessionTTL,

		SlackSigningSecret: cfg.SlackSigningSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// sessionSecret falls back to a random per-process secret, which logs
// everyone out on restart.
func sessionSecret(cfg *config.Config) ([]byte, error) {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret), nil
	}

	log.Println("Warning: SESSION_SECRET is not set, sessions end on restart")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	return secret, nil
}
