package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/chore-board/internal/domain/entity"
)

type sessionRepo struct {
	db dbConn
}

func newSessionRepo(db dbConn) *sessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, created_at, expires_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.CreatedAt.UnixMilli(),
		session.ExpiresAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	var createdAt, expiresAt int64
	query := `
		SELECT created_at, expires_at
		FROM sessions
		WHERE id = ?
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &entity.Session{
		ID:        id,
		CreatedAt: time.UnixMilli(createdAt).UTC(),
		ExpiresAt: time.UnixMilli(expiresAt).UTC(),
	}, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return count, nil
}
