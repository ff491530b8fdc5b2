package store

import (
	"context"

	"record-management-api/internal/model"
)

func (s *Postgres) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (patient_name, doctor_name, date)
		 VALUES ($1,$2,$3) RETURNING id`,
		a.PatientName, a.DoctorName, a.Date,
	).Scan(&a.ID)
}

func (s *Postgres) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, patient_name, doctor_name, date FROM appointments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.DoctorName, &a.Date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAppointment succeeds whether or not the id exists.
func (s *Postgres) DeleteAppointment(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}
