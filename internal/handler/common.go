package handler // handler defines http handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviweb/moviweb/internal/omdb"
	"github.com/moviweb/moviweb/internal/repository"
)

// Handler bundles the repositories and the metadata client used by
// the page handlers.
type Handler struct {
	UserRepo  *repository.UserRepo  // UserRepo provides user persistence
	MovieRepo *repository.MovieRepo // MovieRepo provides movie persistence
	OMDB      *omdb.Client          // OMDB performs the optional metadata lookup
}

// NewHandler constructs a new Handler and panics if any dependency is nil.
func NewHandler(userRepo *repository.UserRepo, movieRepo *repository.MovieRepo, client *omdb.Client) *Handler {
	if userRepo == nil || movieRepo == nil || client == nil {
		panic("nil dependency passed to NewHandler")
	}
	return &Handler{
		UserRepo:  userRepo,
		MovieRepo: movieRepo,
		OMDB:      client,
	}
}

// paramID parses a numeric path parameter. Handlers redirect to a
// safe default page when parsing fails instead of returning an error
// response.
func paramID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// formID parses a numeric form field, such as the hidden user_id
// submitted alongside a movie deletion.
func formID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.FormValue(name)), 10, 64)
}

// userPage builds the path of a user's movie listing page.
func userPage(userID int64) string {
	return "/users/" + strconv.FormatInt(userID, 10)
}
