// Package handler contains the HTTP handlers for the movie library
// pages. This file implements the user endpoints: the index page,
// user creation, the plain listing and user deletion. Validation is
// limited to "non-empty after trimming whitespace"; anything else is
// silently ignored and the request redirects without effect.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/moviweb/moviweb/internal/repository"
)

// Index handles GET / and renders the homepage with the list of
// users ordered by name.
func (h *Handler) Index(c echo.Context) error {
	users, err := h.UserRepo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{"Users": users})
}

// CreateUser handles POST /users. It creates a user from the
// submitted "name" form field and redirects to the homepage. An empty
// name after trimming is ignored.
func (h *Handler) CreateUser(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name != "" {
		if _, err := h.UserRepo.Create(c.Request().Context(), name); err != nil {
			return err
		}
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ListUsers handles GET /users and returns the users as a minimal
// "id: name" HTML listing.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.UserRepo.List(c.Request().Context())
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%d: %s", u.ID, u.Name))
	}
	return c.HTML(http.StatusOK, strings.Join(lines, "<br>"))
}

// DeleteUser handles POST /users/:user_id/delete. It removes the user
// and all of its movies, then redirects to the homepage. A missing
// user is a silent no-op.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := paramID(c, "user_id")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := h.UserRepo.Delete(c.Request().Context(), id); err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
