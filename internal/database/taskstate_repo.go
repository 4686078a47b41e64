package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

type taskStateRepo struct {
	db dbConn
}

func newTaskStateRepo(db dbConn) *taskStateRepo {
	return &taskStateRepo{db: db}
}

func (r *taskStateRepo) Upsert(ctx context.Context, records []entity.TaskRecord) error {
	query := `
		INSERT INTO task_states (task_id, week, period, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`

	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode task %s: %w", rec.ID(), err)
		}

		_, err = r.db.ExecContext(ctx, query,
			rec.ID(),
			rec.Week,
			rec.Period,
			string(payload),
			rec.UpdatedAt.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert task %s: %w", rec.ID(), err)
		}
	}

	return nil
}

func (r *taskStateRepo) Snapshot(ctx context.Context, filter entity.TaskFilter) (map[string]entity.TaskRecord, error) {
	query := `SELECT task_id, payload FROM task_states`

	var (
		where []string
		args  []any
	)
	if filter.Week != "" {
		where = append(where, "week = ?")
		args = append(args, filter.Week)
	}
	if filter.Period != "" {
		where = append(where, "period = ?")
		args = append(args, filter.Period)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query task states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]entity.TaskRecord)
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan task state: %w", err)
		}

		rec, ok := entity.DecodeStoredRecord([]byte(payload))
		if !ok {
			log.Printf("Skipping unreadable task state %s", id)
			continue
		}
		states[rec.ID()] = rec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task states: %w", err)
	}

	return states, nil
}
