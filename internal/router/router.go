// Package router defines how HTTP routes are registered for the
// application. All pages are server-rendered; mutations are form
// POSTs that answer with a redirect.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/moviweb/moviweb/internal/handler"
)

// RegisterRoutes registers all application routes on the provided
// Echo instance. The /healthz endpoint can be used by load balancers
// or monitoring systems to verify that the service is up.
//
// The movie update and delete operations each exist in two variants:
// one that carries only the movie id (the owner arrives via the
// movie row or a hidden form field) and one that carries the owner
// id in the URL.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/healthz", handler.Health)

	// User pages
	e.GET("/", h.Index)
	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.POST("/users/:user_id/delete", h.DeleteUser)

	// Movie pages
	e.GET("/users/:user_id", h.UserMovies)
	e.GET("/users/:user_id/movies", h.UserMovies)
	e.POST("/users/:user_id/movies", h.AddMovie)
	e.GET("/movies/:movie_id/update", h.UpdateMovieForm)
	e.POST("/movies/:movie_id/update", h.UpdateMovie)
	e.POST("/users/:user_id/movies/:movie_id/update", h.UpdateMovieForUser)
	e.POST("/movies/:movie_id/delete", h.DeleteMovie)
	e.POST("/users/:user_id/movies/:movie_id/delete", h.DeleteMovieForUser)
}
