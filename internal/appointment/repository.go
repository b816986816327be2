package appointment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"

	"github.com/jmoiron/sqlx"
)

const detailColumns = `
	a.id, a.user_id, a.trainer_id, a.service_id, a.appointment_date,
	a.start_time, a.end_time, a.total_price_cents, a.status, a.notes,
	a.created_at, a.updated_at,
	s.name AS service_name,
	s.duration_minutes AS duration_minutes,
	t.full_name AS trainer_name,
	u.full_name AS user_name,
	u.email AS user_email
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// lockKey derives the second advisory-lock key from the calendar day so
// concurrent creates for the same trainer and date serialize.
func lockKey(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

func (r *repository) Create(ctx context.Context, a *Appointment) (*Appointment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Serialize concurrent bookings per (trainer, date). A unique index
	// cannot express "no overlap" for differing durations, so the
	// check-then-insert must run under a lock.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, a.TrainerID, lockKey(a.Date)); err != nil {
		return nil, err
	}

	var conflict bool
	err = tx.GetContext(ctx, &conflict, `
		SELECT EXISTS(
			SELECT 1 FROM appointments
			WHERE trainer_id = $1
			  AND appointment_date = $2
			  AND status NOT IN ('cancelled', 'rejected')
			  AND start_time < $4 AND end_time > $3
		)
	`, a.TrainerID, a.Date, a.StartTime, a.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrTimeConflict
	}

	var created Appointment
	err = tx.GetContext(ctx, &created, `
		INSERT INTO appointments (user_id, trainer_id, service_id, appointment_date, start_time, end_time, total_price_cents, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, user_id, trainer_id, service_id, appointment_date, start_time, end_time, total_price_cents, status, notes, created_at, updated_at
	`, a.UserID, a.TrainerID, a.ServiceID, a.Date, a.StartTime, a.EndTime, a.TotalPriceCents, a.Status, a.Notes)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	query := `
		SELECT id, user_id, trainer_id, service_id, appointment_date, start_time, end_time, total_price_cents, status, notes, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var a Appointment
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetByIDWithDetails(ctx context.Context, id int) (*AppointmentWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		WHERE a.id = $1
	`

	var a AppointmentWithDetails
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// ListBusyForTrainerOnDate returns the occupied intervals for the
// trainer on the given day. Cancelled and rejected appointments do not
// block slots and are excluded.
func (r *repository) ListBusyForTrainerOnDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Interval, error) {
	query := `
		SELECT start_time, end_time
		FROM appointments
		WHERE trainer_id = $1
		  AND appointment_date = $2
		  AND status NOT IN ('cancelled', 'rejected')
		ORDER BY start_time ASC
	`

	var busy []schedule.Interval
	err := r.db.SelectContext(ctx, &busy, query, trainerID, date)
	if err != nil {
		return nil, err
	}

	return busy, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date DESC, a.start_time DESC
	`

	var appointments []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *repository) ListAll(ctx context.Context) ([]AppointmentWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN users u ON a.user_id = u.id
		ORDER BY a.created_at DESC
	`

	var appointments []AppointmentWithDetails
	err := r.db.SelectContext(ctx, &appointments, query)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// UpdateStatus changes only the status and stamps updated_at; start, end,
// price and references are immutable after creation.
func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
