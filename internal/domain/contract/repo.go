package contract

import (
	"context"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	TaskState() TaskStateRepo
	Settings() SettingsRepo
	Session() SessionRepo
}

// TaskStateRepo stores completion records keyed by task instance id
type TaskStateRepo interface {
	// Upsert overwrites each record by id; records are independent writes
	Upsert(ctx context.Context, records []entity.TaskRecord) error
	// Snapshot returns every readable record matching filter, keyed by id
	Snapshot(ctx context.Context, filter entity.TaskFilter) (map[string]entity.TaskRecord, error)
}

// SettingsRepo is a small string key-value store
type SettingsRepo interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SessionRepo defines the contract for login sessions
type SessionRepo interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
