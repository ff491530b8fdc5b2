package store

import (
	"context"
	"sync"

	"record-management-api/internal/model"
)

// Memory keeps every entity kind in its own memtable. It serves demo runs
// without a database and backs the test suite.
type Memory struct {
	// held across the duplicate check and the insert so a username is
	// claimed exactly once
	userMu sync.Mutex

	users        *memtable[model.User]
	appointments *memtable[model.Appointment]
	plans        *memtable[model.Plan]
}

func NewMemory() *Memory {
	m := &Memory{
		users:        newMemtable[model.User](),
		appointments: newMemtable[model.Appointment](),
		plans:        newMemtable[model.Plan](),
	}
	// same seed rows the migration inserts
	m.plans.insert(func(id int64) model.Plan { return model.Plan{ID: id, Name: "Basic", Price: 10} })
	m.plans.insert(func(id int64) model.Plan { return model.Plan{ID: id, Name: "Premium", Price: 50} })
	return m
}

func (m *Memory) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	m.userMu.Lock()
	defer m.userMu.Unlock()
	taken := m.users.find(func(u model.User) bool { return u.Username == username })
	if len(taken) > 0 {
		return 0, ErrDuplicateUsername
	}
	id := m.users.insert(func(id int64) model.User {
		return model.User{ID: id, Username: username, PasswordHash: passwordHash}
	})
	return id, nil
}

func (m *Memory) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	match := m.users.find(func(u model.User) bool { return u.Username == username })
	if len(match) == 0 {
		return nil, ErrNotFound
	}
	return &match[0], nil
}

func (m *Memory) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.users.find(func(model.User) bool { return true }), nil
}

func (m *Memory) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	a.ID = m.appointments.insert(func(id int64) model.Appointment {
		return model.Appointment{ID: id, PatientName: a.PatientName, DoctorName: a.DoctorName, Date: a.Date}
	})
	return nil
}

func (m *Memory) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return m.appointments.find(func(model.Appointment) bool { return true }), nil
}

func (m *Memory) DeleteAppointment(ctx context.Context, id int64) error {
	m.appointments.remove(id)
	return nil
}

func (m *Memory) ListPlans(ctx context.Context) ([]model.Plan, error) {
	return m.plans.find(func(model.Plan) bool { return true }), nil
}
