// This file covers the movies table. Inserts persist a fully
// populated movie; updates apply only the fields present in the
// params struct, building the SET clause dynamically so untouched
// columns keep their values.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/moviweb/moviweb/internal/model"
)

// MovieRepo encapsulates all database queries related to movies.
type MovieRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Insert persists a movie. On success the movie's ID field is
// populated with the auto-generated value.
func (r *MovieRepo) Insert(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (name, director, year, poster_url, user_id)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Director, m.Year, m.PosterURL, m.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// ListByUser returns all movies owned by a user ordered by name
// ascending. A user without movies (or an unknown user id) yields an
// empty slice, not an error.
func (r *MovieRepo) ListByUser(ctx context.Context, userID int64) ([]*model.Movie, error) {
	const q = `SELECT id, name, director, year, poster_url, user_id
	           FROM movies WHERE user_id = ? ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Movie
	for rows.Next() {
		m := new(model.Movie)
		if err := rows.Scan(&m.ID, &m.Name, &m.Director, &m.Year, &m.PosterURL, &m.UserID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a movie by its ID. It returns ErrMovieNotFound if
// no row is found.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT id, name, director, year, poster_url, user_id
	           FROM movies WHERE id = ?`
	var m model.Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.Director, &m.Year, &m.PosterURL, &m.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update applies a partial update to a movie. Only non-nil fields in
// params are written; a call with no fields set is a no-op that still
// reports ErrMovieNotFound for an unknown id. The SQL is built
// dynamically but stays fully visible.
func (r *MovieRepo) Update(ctx context.Context, params model.UpdateMovieParams) error {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if params.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *params.Name)
	}
	if params.Director != nil {
		setClauses = append(setClauses, "director = ?")
		args = append(args, *params.Director)
	}
	if params.Year != nil {
		setClauses = append(setClauses, "year = ?")
		args = append(args, *params.Year)
	}
	if params.PosterURL != nil {
		setClauses = append(setClauses, "poster_url = ?")
		args = append(args, *params.PosterURL)
	}
	if len(setClauses) == 0 {
		// Nothing to change; still surface unknown ids to the caller.
		_, err := r.GetByID(ctx, params.ID)
		return err
	}

	args = append(args, params.ID)
	q := "UPDATE movies SET " + strings.Join(setClauses, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for a missing row and for an update
		// that changed nothing; distinguish with a lookup.
		if _, err := r.GetByID(ctx, params.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a movie by id. ErrMovieNotFound is returned when no
// row was affected so callers can decide whether that matters; the
// handlers here treat it as a silent no-op.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
