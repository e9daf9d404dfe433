package model

import "database/sql"

// Movie represents a movie entry owned by a user, mapping 1-to-1 to
// a row in the `movies` table. Director, Year and PosterURL are
// nullable columns: they stay unset when the external metadata
// lookup is disabled or returns no match.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – movie title, required. Duplicates are allowed.
//  Director  – optional director name.
//  Year      – optional 4-digit release year.
//  PosterURL – optional poster image URL.
//  UserID    – owning user, references users.id.
type Movie struct {
	ID        int64          // movies.id
	Name      string         // movies.name
	Director  sql.NullString // movies.director (nullable)
	Year      sql.NullInt64  // movies.year (nullable)
	PosterURL sql.NullString // movies.poster_url (nullable)
	UserID    int64          // movies.user_id (references users.id)
}

// UpdateMovieParams holds the fields that may change in a partial
// movie update. A nil pointer leaves the column untouched; a non-nil
// pointer carrying an invalid null value clears the column. Keeping
// update input separate from the row struct makes the applied subset
// explicit and prevents accidental mass-assignment.
type UpdateMovieParams struct {
	ID        int64
	Name      *string
	Director  *sql.NullString
	Year      *sql.NullInt64
	PosterURL *sql.NullString
}
