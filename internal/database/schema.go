package database

import (
	"context"
	"database/sql"
)

// sqliteSchema mirrors the MySQL migrations in sqlite dialect. The
// migrations/ directory is authoritative for MySQL deployments; this
// bootstrap exists so a sqlite3 database is usable straight from
// startup and so tests can run against :memory: databases.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS movies (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    director   TEXT,
    year       INTEGER,
    poster_url TEXT,
    user_id    INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_movies_user_id ON movies (user_id);
`

// EnsureSchema creates the users and movies tables if they do not
// exist yet. Only used for the sqlite3 driver; MySQL schemas are
// managed through cmd/migrate.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, sqliteSchema)
	return err
}
