package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the board schema: task_states, settings and sessions.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies every pending migration in sql/ in file name order.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}
