package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("google:123", "user@example.com", "Test User", "https://example.com/p.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), User{
		ID:         "google:123",
		Email:      "user@example.com",
		FullName:   "Test User",
		PictureURL: "https://example.com/p.png",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "picture_url", "created_at", "updated_at"}).
		AddRow("google:123", "user@example.com", "Test User", nil, created, created)

	mock.ExpectQuery(`FROM users\s+WHERE id = \$1`).
		WithArgs("google:123").
		WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), "google:123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Email != "user@example.com" || user.FullName != "Test User" {
		t.Errorf("user = %+v", user)
	}
	if user.PictureURL != "" {
		t.Errorf("picture = %q, want empty for NULL", user.PictureURL)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := &PGRepo{DB: db}

	mock.ExpectQuery(`FROM users`).
		WithArgs("google:missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "google:missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
