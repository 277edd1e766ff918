package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertThenGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	err := svc.UpsertFromAuth(ctx, User{
		ID:         "google:123",
		Email:      "user@example.com",
		FullName:   "Test User",
		PictureURL: "https://example.com/p.png",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := svc.GetByID(ctx, "google:123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "user@example.com" || got.FullName != "Test User" {
		t.Errorf("got %+v", got)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	user := User{ID: "google:123", Email: "user@example.com"}
	if err := svc.UpsertFromAuth(ctx, user); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first, _ := svc.GetByID(ctx, "google:123")

	user.FullName = "Renamed"
	if err := svc.UpsertFromAuth(ctx, user); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, _ := svc.GetByID(ctx, "google:123")

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed on upsert")
	}
	if second.FullName != "Renamed" {
		t.Errorf("full name = %q", second.FullName)
	}
}

func TestUpsertRequiresIDAndEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if err := svc.UpsertFromAuth(ctx, User{Email: "x@example.com"}); err == nil {
		t.Error("expected error for missing id")
	}
	if err := svc.UpsertFromAuth(ctx, User{ID: "google:123"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.GetByID(context.Background(), "google:missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
