// Package repository contains data access logic separated from HTTP
// handlers. This file covers the users table: creating users, the
// name-ordered listing shown on the index page, lookups by id, and
// the cascading delete that keeps movies from being orphaned.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/moviweb/moviweb/internal/model"
)

// UserRepo encapsulates all database queries related to users. It
// depends on a sql.DB connection which should be configured elsewhere.
type UserRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewUserRepo constructs a UserRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user and returns the persisted record with the
// auto-generated id populated.
func (r *UserRepo) Create(ctx context.Context, name string) (*model.User, error) {
	const q = "INSERT INTO users (name) VALUES (?)"
	res, err := r.db.ExecContext(ctx, q, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.User{ID: id, Name: name}, nil
}

// List returns all users ordered by name ascending.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	const q = "SELECT id, name FROM users ORDER BY name ASC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u := new(model.User)
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a user by its ID. It returns ErrUserNotFound if no
// row is found.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = "SELECT id, name FROM users WHERE id = ?"
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes a user and all movies it owns. The deletion occurs
// within a transaction so that no orphan movies survive a partial
// failure. ErrUserNotFound is returned when the user does not exist.
func (r *UserRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Verify the user exists before touching dependent rows.
	var exists int64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrUserNotFound
		}
		return err
	}
	// Cascade delete: remove the user's movies first, then the user.
	if _, err = tx.ExecContext(ctx, "DELETE FROM movies WHERE user_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
