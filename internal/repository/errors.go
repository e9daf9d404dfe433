// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios; the handlers in this application translate both into a
// redirect to a safe default page rather than an error response.
package repository

import "errors"

// ErrUserNotFound is returned when a user id does not resolve to a
// row in the users table.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when a movie id does not resolve to a
// row in the movies table, including deletes that affect zero rows.
var ErrMovieNotFound = errors.New("movie not found")
