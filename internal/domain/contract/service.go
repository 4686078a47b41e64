package contract

import (
	"context"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

// TaskStateService validates and stores completion state
type TaskStateService interface {
	Snapshot(ctx context.Context, filter entity.TaskFilter) (map[string]entity.TaskRecord, error)
	Put(ctx context.Context, inputs []entity.TaskInput) (int, error)
}

// AllocatorService owns the monthly group split
type AllocatorService interface {
	GetOrInitGroups(ctx context.Context) (entity.MonthlyGroups, error)
	SwapAssignment(ctx context.Context) (entity.MonthlyPlan, error)
	ResetGroups(ctx context.Context) (entity.MonthlyPlan, error)
	Plan(ctx context.Context) (entity.MonthlyPlan, error)
}

// BoardService renders a week of the board as data
type BoardService interface {
	Week(ctx context.Context, date time.Time) (*entity.Board, error)
}

// AuthService checks the shared password and manages sessions
type AuthService interface {
	Login(ctx context.Context, password string) (token string, session *entity.Session, err error)
	Verify(ctx context.Context, token string) (*entity.Session, error)
	Logout(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}
