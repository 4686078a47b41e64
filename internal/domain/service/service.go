package service

import (
	"math/rand/v2"
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/domain/contract"
)

// Options carries everything the services need besides the data manager.
type Options struct {
	Catalog  *catalog.Catalog
	Auth     AuthConfig
	Monthly  MonthlyConfig
	Announce AnnounceConfig
	// Slack may be nil; announcements are then skipped
	Slack contract.SlackClient
	// Settings overrides dm.Settings() for the monthly allocator
	Settings contract.SettingsRepo
	Rand     *rand.Rand
	Now      func() time.Time
}

type Services struct {
	Rotation  *RotationEngine
	Allocator *Allocator
	TaskState *taskStateService
	Board     *boardService
	Auth      *authService
	Scheduler *scheduler
}

func New(dm contract.DataManager, opts Options) *Services {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	settings := opts.Settings
	if settings == nil {
		settings = dm.Settings()
	}

	rotation := NewRotationEngine(opts.Catalog)
	allocator := NewAllocator(settings, opts.Catalog.Persons, opts.Monthly, opts.Rand)
	auth := newAuth(dm, opts.Auth, now)

	return &Services{
		Rotation:  rotation,
		Allocator: allocator,
		TaskState: newTaskState(dm, now),
		Board:     newBoard(dm, opts.Catalog, rotation, allocator),
		Auth:      auth,
		Scheduler: newScheduler(rotation, auth, opts.Slack, opts.Announce, now),
	}
}
