package store

import (
	"context"
	"errors"

	"record-management-api/internal/model"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Store is the persistence contract shared by the postgres and in-memory
// backends. Each entity kind owns its own table; ids are assigned on insert
// and never reused.
type Store interface {
	// CreateUser claims the username exactly once, even under concurrent
	// registration, and returns ErrDuplicateUsername to the loser.
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	// CreateAppointment fills in the assigned id.
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	// DeleteAppointment is an idempotent no-op for unknown ids.
	DeleteAppointment(ctx context.Context, id int64) error

	// ListPlans returns an empty slice, never nil, when no plans exist.
	ListPlans(ctx context.Context) ([]model.Plan, error)
}
