package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	slackcmd "github.com/diegoclair/chore-board/internal/domain/slack"
	"github.com/slack-go/slack"
)

// AnnounceConfig says where and when the weekly rotation is posted.
type AnnounceConfig struct {
	ChannelID string
	Weekday   int    // ISO weekday, 1 = Monday
	Time      string // HH:MM, local time
}

type scheduler struct {
	rotation    *RotationEngine
	auth        contract.AuthService
	slackClient contract.SlackClient
	cfg         AnnounceConfig
	now         func() time.Time
	stopChan    chan struct{}
	done        sync.WaitGroup
	running     bool
}

func newScheduler(rotation *RotationEngine, auth contract.AuthService, slackClient contract.SlackClient, cfg AnnounceConfig, now func() time.Time) *scheduler {
	return &scheduler{
		rotation:    rotation,
		auth:        auth,
		slackClient: slackClient,
		cfg:         cfg,
		now:         now,
		stopChan:    make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	s.purgeSessions()

	s.done.Add(1)
	go func() {
		defer s.done.Done()
		s.mainLoop()
	}()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.done.Wait()
	s.running = false
}

func (s *scheduler) mainLoop() {
	for {
		now := s.now()
		nextTime := s.calculateNext(now)

		wait := 24 * time.Hour
		if !nextTime.IsZero() {
			log.Printf("Next announcement at %s", nextTime.Format("2006-01-02 15:04:05 MST"))
			wait = nextTime.Sub(now)
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			if !nextTime.IsZero() {
				if err := s.announce(nextTime); err != nil {
					log.Printf("Failed to announce rotation: %v", err)
				}
			}
			s.purgeSessions()

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// calculateNext returns the first announcement time strictly after now, or
// zero when announcing is not configured.
func (s *scheduler) calculateNext(now time.Time) time.Time {
	if s.slackClient == nil || s.cfg.ChannelID == "" {
		return time.Time{}
	}

	hour, minute, err := parseClock(s.cfg.Time)
	if err != nil {
		log.Printf("Invalid announce time %q: %v", s.cfg.Time, err)
		return time.Time{}
	}
	if s.cfg.Weekday < domain.Monday || s.cfg.Weekday > domain.Sunday {
		log.Printf("Invalid announce weekday %d", s.cfg.Weekday)
		return time.Time{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	for i := 0; i <= 7; i++ {
		candidate := today.AddDate(0, 0, i)
		if isoWeekday(candidate) == s.cfg.Weekday && candidate.After(now) {
			return candidate
		}
	}

	// Should never reach here with a valid weekday
	return time.Time{}
}

func (s *scheduler) announce(at time.Time) error {
	rot := s.rotation.ForDate(at)

	_, _, err := s.slackClient.PostMessage(
		s.cfg.ChannelID,
		slack.MsgOptionText(slackcmd.FormatRotation(rot), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	log.Printf("Rotation for %s announced to channel %s", rot.WeekKey, s.cfg.ChannelID)
	return nil
}

func (s *scheduler) purgeSessions() {
	if s.auth == nil {
		return
	}
	n, err := s.auth.PurgeExpired(context.Background())
	if err != nil {
		log.Printf("Failed to purge sessions: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Purged %d expired sessions", n)
	}
}

func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("use HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute %q", parts[1])
	}
	return hour, minute, nil
}

func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		return domain.Sunday
	}
	return wd
}
