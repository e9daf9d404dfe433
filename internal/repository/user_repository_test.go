package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/moviweb/moviweb/internal/database"
	"github.com/moviweb/moviweb/internal/model"
	"github.com/moviweb/moviweb/internal/repository"
)

// newTestDB opens a private in-memory sqlite database with the
// application schema applied. MaxOpenConns(1) keeps every statement
// on the same connection, which is what ties the pool to a single
// in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func TestUserRepo_Create(t *testing.T) {
	r := repository.NewUserRepo(newTestDB(t))
	ctx := context.Background()

	u, err := r.Create(ctx, "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if u.Name != "Alice" {
		t.Fatalf("unexpected name: %q", u.Name)
	}
}

func TestUserRepo_List_OrderedByName(t *testing.T) {
	r := repository.NewUserRepo(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		if _, err := r.Create(ctx, name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	users, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	want := []string{"Alice", "Bob", "Charlie"}
	for i, u := range users {
		if u.Name != want[i] {
			t.Fatalf("position %d: want %q, got %q", i, want[i], u.Name)
		}
	}
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	r := repository.NewUserRepo(newTestDB(t))

	_, err := r.GetByID(context.Background(), 99999)
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepo_Delete_CascadesToMovies(t *testing.T) {
	db := newTestDB(t)
	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	ctx := context.Background()

	u, err := users.Create(ctx, "Alice")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, title := range []string{"Inception", "Memento"} {
		if err := movies.Insert(ctx, &model.Movie{Name: title, UserID: u.ID}); err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}

	if err := users.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := users.GetByID(ctx, u.ID); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	left, err := movies.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no movies after cascade, got %d", len(left))
	}
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	r := repository.NewUserRepo(newTestDB(t))

	err := r.Delete(context.Background(), 42)
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
