package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/chore-board/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	taskStateRepo contract.TaskStateRepo
	settingsRepo  contract.SettingsRepo
	sessionRepo   contract.SessionRepo

	// external task state backend, kept across transactions
	taskStateOverride contract.TaskStateRepo
}

// Option customizes a DataManager
type Option func(*instance)

// WithTaskStateRepo stores completion state outside sqlite, e.g. in Redis
func WithTaskStateRepo(repo contract.TaskStateRepo) Option {
	return func(i *instance) {
		i.taskStateOverride = repo
	}
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB, opts ...Option) contract.DataManager {
	instance := &instance{
		db: db,
	}
	for _, opt := range opts {
		opt(instance)
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.taskStateRepo = newTaskStateRepo(i.db.conn)
	if i.taskStateOverride != nil {
		i.taskStateRepo = i.taskStateOverride
	}
	i.settingsRepo = newSettingsRepo(i.db.conn)
	i.sessionRepo = newSessionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn, taskStateOverride contract.TaskStateRepo) *instance {
	i := &instance{
		taskStateRepo:     newTaskStateRepo(db),
		settingsRepo:      newSettingsRepo(db),
		sessionRepo:       newSessionRepo(db),
		taskStateOverride: taskStateOverride,
	}
	if taskStateOverride != nil {
		i.taskStateRepo = taskStateOverride
	}
	return i
}

// TaskState returns the completion state repository
func (i *instance) TaskState() contract.TaskStateRepo {
	return i.taskStateRepo
}

// Settings returns the key-value settings repository
func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// Session returns the session repository
func (i *instance) Session() contract.SessionRepo {
	return i.sessionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx, i.taskStateOverride)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
