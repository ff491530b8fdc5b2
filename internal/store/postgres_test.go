package store_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"record-management-api/internal/model"
	"record-management-api/internal/store"
)

func setupPG(t *testing.T) *store.Postgres {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if migration, err := os.ReadFile("../../db/migrations/001_init.sql"); err == nil {
		_, _ = pool.Exec(context.Background(), string(migration))
	}
	return store.NewPostgres(pool)
}

func randomUsername() string {
	return fmt.Sprintf("test-%s", uuid.New().String()[:8])
}

func TestPostgresUserRoundTrip(t *testing.T) {
	s := setupPG(t)
	ctx := context.Background()

	name := randomUsername()
	id, err := s.CreateUser(ctx, name, "hash")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("no id assigned")
	}

	u, err := s.UserByUsername(ctx, name)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.ID != id || u.PasswordHash != "hash" {
		t.Fatalf("unexpected record: %+v", u)
	}
}

func TestPostgresDuplicateUsername(t *testing.T) {
	s := setupPG(t)
	ctx := context.Background()

	name := randomUsername()
	if _, err := s.CreateUser(ctx, name, "h1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.CreateUser(ctx, name, "h2")
	if !errors.Is(err, store.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestPostgresUnknownUser(t *testing.T) {
	s := setupPG(t)
	_, err := s.UserByUsername(context.Background(), randomUsername())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresAppointmentDeleteIdempotent(t *testing.T) {
	s := setupPG(t)
	ctx := context.Background()

	a := &model.Appointment{PatientName: "Bob", DoctorName: "Dr. Lee", Date: "2024-01-01"}
	if err := s.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("no id assigned")
	}
	if err := s.DeleteAppointment(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteAppointment(ctx, a.ID); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestPostgresPlansSeeded(t *testing.T) {
	s := setupPG(t)
	plans, err := s.ListPlans(context.Background())
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if plans == nil {
		t.Fatal("nil plan list")
	}
	if len(plans) < 2 {
		t.Fatalf("expected seeded plans, got %d", len(plans))
	}
}
