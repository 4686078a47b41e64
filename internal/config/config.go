package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	DatabasePath string
	StoreURL     string
	RedisKey     string
	CatalogPath  string

	SitePasswordHash string
	SessionSecret    string
	SessionTTL       time.Duration
	CookieSecure     bool

	MonthlyGroupA []string
	MonthlyGroupB []string

	SlackBotToken  string
	SlackChannelID string
	AnnounceDay    int
	AnnounceTime   string

	// enables the slash command endpoint
	SlackSigningSecret string

	// CLI only
	BoardURL      string
	BoardPassword string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_PATH", "./board.db")
	v.SetDefault("STORE_URL", "")
	v.SetDefault("REDIS_KEY", "tasks")
	v.SetDefault("CATALOG_PATH", "./opgaver.json")
	v.SetDefault("SITE_PASSWORD_HASH", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "720h")
	v.SetDefault("COOKIE_SECURE", true)
	v.SetDefault("MONTHLY_GROUP_A", "NA,OL")
	v.SetDefault("MONTHLY_GROUP_B", "BA,AL")
	v.SetDefault("SLACK_BOT_TOKEN", "")
	v.SetDefault("SLACK_CHANNEL_ID", "")
	v.SetDefault("SLACK_SIGNING_SECRET", "")
	v.SetDefault("ANNOUNCE_DAY", 1)
	v.SetDefault("ANNOUNCE_TIME", "08:00")
	v.SetDefault("BOARD_URL", "http://localhost:3000")
	v.SetDefault("BOARD_PASSWORD", "")
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: must be positive")
	}

	day := v.GetInt("ANNOUNCE_DAY")
	if day < 1 || day > 7 {
		return nil, fmt.Errorf("invalid ANNOUNCE_DAY %d: must be 1 (Monday) to 7 (Sunday)", day)
	}

	return &Config{
		Port:             v.GetString("PORT"),
		DatabasePath:     v.GetString("DATABASE_PATH"),
		StoreURL:         v.GetString("STORE_URL"),
		RedisKey:         v.GetString("REDIS_KEY"),
		CatalogPath:      v.GetString("CATALOG_PATH"),
		SitePasswordHash: strings.TrimSpace(v.GetString("SITE_PASSWORD_HASH")),
		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionTTL:       ttl,
		CookieSecure:     v.GetBool("COOKIE_SECURE"),
		MonthlyGroupA:    splitList(v.GetString("MONTHLY_GROUP_A")),
		MonthlyGroupB:    splitList(v.GetString("MONTHLY_GROUP_B")),
		SlackBotToken:    v.GetString("SLACK_BOT_TOKEN"),
		SlackChannelID:   v.GetString("SLACK_CHANNEL_ID"),
		AnnounceDay:      day,
		AnnounceTime:     v.GetString("ANNOUNCE_TIME"),
		BoardURL:         strings.TrimRight(v.GetString("BOARD_URL"), "/"),
		BoardPassword:    v.GetString("BOARD_PASSWORD"),

		SlackSigningSecret: v.GetString("SLACK_SIGNING_SECRET"),
	}, nil
}

// UsesRedis reports whether task state lives in Redis instead of sqlite
func (c *Config) UsesRedis() bool {
	return strings.HasPrefix(c.StoreURL, "redis://") || strings.HasPrefix(c.StoreURL, "rediss://")
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
