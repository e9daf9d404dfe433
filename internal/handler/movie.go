// This file implements the movie endpoints: the per-user movie page,
// adding a movie (optionally enriched via OMDb), the title update
// routes (which re-run the same enrichment decision as creation) and
// the delete routes. Enrichment failures never block the CRUD action;
// the movie is stored with the bare title instead.
package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviweb/moviweb/internal/model"
	"github.com/moviweb/moviweb/internal/omdb"
	"github.com/moviweb/moviweb/internal/repository"
)

// UserMovies handles GET /users/:user_id and its /movies alias. It
// renders the movies page for a user. An unknown user still renders
// the page so the listing degrades instead of erroring.
func (h *Handler) UserMovies(c echo.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	ctx := c.Request().Context()

	users, err := h.UserRepo.List(ctx)
	if err != nil {
		return err
	}
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	movies, err := h.MovieRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "movies.html", echo.Map{
		"Users":  users,
		"User":   user, // nil when the id does not resolve
		"UserID": userID,
		"Movies": movies,
	})
}

// AddMovie handles POST /users/:user_id/movies. The submitted title
// is trimmed and, when a credential is configured, looked up against
// OMDb; on a match director, year and poster are copied in. The
// movie is stored with just the title otherwise.
func (h *Handler) AddMovie(c echo.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	ctx := c.Request().Context()

	if _, err := h.UserRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	data := h.lookupMetadata(ctx, title)
	movie := &model.Movie{Name: title, UserID: userID}
	if data != nil {
		if data.Title != "" {
			movie.Name = data.Title
		}
		movie.Director = sql.NullString{String: data.Director, Valid: data.Director != ""}
		if y, ok := omdb.ParseYear(data.Year); ok {
			movie.Year = sql.NullInt64{Int64: y, Valid: true}
		}
		movie.PosterURL = sql.NullString{String: data.Poster, Valid: data.Poster != ""}
	}
	if err := h.MovieRepo.Insert(ctx, movie); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPage(userID))
}

// UpdateMovieForm handles GET /movies/:movie_id/update and renders
// the title edit form. Unknown movies redirect to the homepage.
func (h *Handler) UpdateMovieForm(c echo.Context) error {
	movieID, err := paramID(c, "movie_id")
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	movie, err := h.MovieRepo.GetByID(c.Request().Context(), movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Render(http.StatusOK, "update_movie.html", echo.Map{"Movie": movie})
}

// UpdateMovie handles POST /movies/:movie_id/update. The new title
// goes through the same enrichment decision as creation: on a match
// the name, director, year and poster are all rewritten; on a miss
// only the name changes and the other fields keep their values.
func (h *Handler) UpdateMovie(c echo.Context) error {
	movieID, err := paramID(c, "movie_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	ctx := c.Request().Context()

	movie, err := h.MovieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}
	userID := movie.UserID

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	if err := h.applyTitleUpdate(ctx, movieID, title); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPage(userID))
}

// UpdateMovieForUser handles POST /users/:user_id/movies/:movie_id/update,
// the route variant that carries the owner id in the URL.
func (h *Handler) UpdateMovieForUser(c echo.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	movieID, err := paramID(c, "movie_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	if err := h.applyTitleUpdate(c.Request().Context(), movieID, title); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPage(userID))
}

// DeleteMovie handles POST /movies/:movie_id/delete. The owning user
// id arrives as a hidden form field so the response can redirect to
// the correct listing; without a usable value it falls back to the
// homepage. A missing movie is a silent no-op.
func (h *Handler) DeleteMovie(c echo.Context) error {
	movieID, err := paramID(c, "movie_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := h.MovieRepo.Delete(c.Request().Context(), movieID); err != nil && !errors.Is(err, repository.ErrMovieNotFound) {
		return err
	}
	if userID, err := formID(c, "user_id"); err == nil {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// DeleteMovieForUser handles POST /users/:user_id/movies/:movie_id/delete,
// the route variant that carries the owner id in the URL.
func (h *Handler) DeleteMovieForUser(c echo.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	movieID, err := paramID(c, "movie_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, userPage(userID))
	}
	if err := h.MovieRepo.Delete(c.Request().Context(), movieID); err != nil && !errors.Is(err, repository.ErrMovieNotFound) {
		return err
	}
	return c.Redirect(http.StatusSeeOther, userPage(userID))
}

// applyTitleUpdate runs the enrichment decision for a new title and
// writes the resulting partial update. On a miss only the name key is
// present; on a match director, year and poster are included as well,
// clearing columns the provider left out.
func (h *Handler) applyTitleUpdate(ctx context.Context, movieID int64, title string) error {
	data := h.lookupMetadata(ctx, title)

	name := title
	params := model.UpdateMovieParams{ID: movieID, Name: &name}
	if data != nil {
		if data.Title != "" {
			name = data.Title
		}
		director := sql.NullString{String: data.Director, Valid: data.Director != ""}
		params.Director = &director
		var year sql.NullInt64
		if y, ok := omdb.ParseYear(data.Year); ok {
			year = sql.NullInt64{Int64: y, Valid: true}
		}
		params.Year = &year
		poster := sql.NullString{String: data.Poster, Valid: data.Poster != ""}
		params.PosterURL = &poster
	}
	if err := h.MovieRepo.Update(ctx, params); err != nil && !errors.Is(err, repository.ErrMovieNotFound) {
		return err
	}
	return nil
}

// lookupMetadata calls OMDb if and only if an access credential is
// configured. It returns nil when enrichment is disabled, when the
// provider reports no match, and when the call fails; a nil result
// means the movie keeps just the user-supplied title.
func (h *Handler) lookupMetadata(ctx context.Context, title string) *omdb.Result {
	if !h.OMDB.Enabled() {
		return nil
	}
	data, err := h.OMDB.Lookup(ctx, title)
	if err != nil {
		log.Printf("omdb lookup for %q failed: %v", title, err)
		return nil
	}
	return data
}
