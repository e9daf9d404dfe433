package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/moviweb/moviweb/internal/config"
	"github.com/moviweb/moviweb/internal/database"
	"github.com/moviweb/moviweb/internal/handler"
	"github.com/moviweb/moviweb/internal/omdb"
	"github.com/moviweb/moviweb/internal/repository"
	"github.com/moviweb/moviweb/internal/router"
	"github.com/moviweb/moviweb/internal/view"
)

func main() {
	_ = godotenv.Load() // a missing .env file is fine; env vars win anyway
	cfg := config.Load()

	var dsn string
	switch cfg.DBDriver {
	case "mysql":
		dsn = database.MySQLDSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	case "sqlite3":
		dsn = database.SQLiteDSN(cfg.DBPath)
	}
	db, err := database.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if cfg.DBDriver == "sqlite3" {
		// MySQL schemas are managed by cmd/migrate; sqlite databases
		// bootstrap themselves so local runs work out of the box.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
	}

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	client := omdb.NewClient(cfg.OMDBAPIKey)
	h := handler.NewHandler(users, movies, client)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.NewRenderer()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	router.RegisterRoutes(e, h)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, enrichment=%v)", addr, cfg.Env, client.Enabled())

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
