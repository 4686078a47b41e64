package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/internal/domain/entity"
)

type taskStateService struct {
	dm  contract.DataManager
	now func() time.Time
}

func newTaskState(dm contract.DataManager, now func() time.Time) *taskStateService {
	return &taskStateService{dm: dm, now: now}
}

func (s *taskStateService) Snapshot(ctx context.Context, filter entity.TaskFilter) (map[string]entity.TaskRecord, error) {
	tasks, err := s.dm.TaskState().Snapshot(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return tasks, nil
}

// Put validates the whole batch before writing anything, stamps every record
// with the server clock and overwrites whatever was stored under each id.
// Concurrent writers to one id race; the last write to land wins.
func (s *taskStateService) Put(ctx context.Context, inputs []entity.TaskInput) (int, error) {
	records, err := entity.ValidateBatch(inputs)
	if err != nil {
		return 0, err
	}

	now := s.now().UTC()
	for i := range records {
		records[i].UpdatedAt = now
	}

	if err := s.dm.TaskState().Upsert(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to store tasks: %w", err)
	}

	return len(records), nil
}
