package trainer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrNoActiveWindow means the trainer has no active working window on
	// the requested weekday. Callers treat it as "no slots", not a failure.
	ErrNoActiveWindow = errors.New("no active availability window")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Trainer) (*Trainer, error) {
	query := `
		INSERT INTO trainers (full_name, email, phone_number, specialization, bio, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, email, phone_number, specialization, bio, image_url, is_active, created_at
	`

	var created Trainer
	err := r.db.GetContext(ctx, &created, query,
		t.FullName, t.Email, t.PhoneNumber, t.Specialization, t.Bio, t.ImageURL, t.IsActive)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, full_name, email, phone_number, specialization, bio, image_url, is_active, created_at
		FROM trainers
		WHERE id = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT id, full_name, email, phone_number, specialization, bio, image_url, is_active, created_at
		FROM trainers
		ORDER BY created_at DESC
	`

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) Update(ctx context.Context, t *Trainer) error {
	query := `
		UPDATE trainers
		SET full_name = $2, email = $3, phone_number = $4, specialization = $5, bio = $6, image_url = $7, is_active = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		t.ID, t.FullName, t.Email, t.PhoneNumber, t.Specialization, t.Bio, t.ImageURL, t.IsActive)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTrainerNotFound
	}

	return nil
}

// SetServices replaces the trainer's offered-service set.
func (r *repository) SetServices(ctx context.Context, trainerID int, serviceIDs []int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trainer_services WHERE trainer_id = $1`, trainerID); err != nil {
		return err
	}

	for _, serviceID := range serviceIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trainer_services (trainer_id, service_id) VALUES ($1, $2)`,
			trainerID, serviceID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) ListServiceIDs(ctx context.Context, trainerID int) ([]int, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids,
		`SELECT service_id FROM trainer_services WHERE trainer_id = $1 ORDER BY service_id`, trainerID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) ListForService(ctx context.Context, serviceID int) ([]TrainerOption, error) {
	query := `
		SELECT t.id, t.full_name
		FROM trainer_services ts
		JOIN trainers t ON ts.trainer_id = t.id
		WHERE ts.service_id = $1 AND t.is_active = true
		ORDER BY t.full_name ASC
	`

	var options []TrainerOption
	err := r.db.SelectContext(ctx, &options, query, serviceID)
	if err != nil {
		return nil, err
	}

	return options, nil
}

func (r *repository) CreateAvailability(ctx context.Context, a *Availability) (*Availability, error) {
	query := `
		INSERT INTO trainer_availabilities (trainer_id, day_of_week, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, trainer_id, day_of_week, start_time, end_time, is_active
	`

	var created Availability
	err := r.db.GetContext(ctx, &created, query,
		a.TrainerID, a.DayOfWeek, a.StartTime, a.EndTime, a.IsActive)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) ListAvailability(ctx context.Context, trainerID int) ([]Availability, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_time, end_time, is_active
		FROM trainer_availabilities
		WHERE trainer_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`

	var windows []Availability
	err := r.db.SelectContext(ctx, &windows, query, trainerID)
	if err != nil {
		return nil, err
	}

	return windows, nil
}

// GetActiveWindow returns the first active window for the weekday,
// ordered by id. When a trainer has several windows on the same day only
// this one is consulted for slot generation.
func (r *repository) GetActiveWindow(ctx context.Context, trainerID, dayOfWeek int) (*Availability, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_time, end_time, is_active
		FROM trainer_availabilities
		WHERE trainer_id = $1 AND day_of_week = $2 AND is_active = true
		ORDER BY id ASC
		LIMIT 1
	`

	var window Availability
	err := r.db.GetContext(ctx, &window, query, trainerID, dayOfWeek)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveWindow
	}
	if err != nil {
		return nil, err
	}

	return &window, nil
}

func (r *repository) DeleteAvailability(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trainer_availabilities WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}
