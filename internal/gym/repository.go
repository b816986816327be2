package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSettingsNotFound = errors.New("gym settings not found")

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
	EnsureDefaults(ctx context.Context, defaults *Settings) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const settingsColumns = `id, gym_name, open_time, close_time, address, phone_number, email, description, logo_url`

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM gym_settings
		ORDER BY id
		LIMIT 1
	`

	var s Settings
	err := r.db.GetContext(ctx, &s, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Settings) error {
	query := `
		UPDATE gym_settings
		SET gym_name = $2, open_time = $3, close_time = $4, address = $5, phone_number = $6, email = $7, description = $8, logo_url = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, s.ID, s.GymName, s.OpenTime, s.CloseTime, s.Address, s.PhoneNumber, s.Email, s.Description, s.LogoURL)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// EnsureDefaults inserts the profile row on first startup and leaves an
// existing row alone, so admin edits survive restarts.
func (r *repository) EnsureDefaults(ctx context.Context, defaults *Settings) error {
	query := `
		INSERT INTO gym_settings (gym_name, open_time, close_time, address, phone_number, email, description, logo_url)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (SELECT 1 FROM gym_settings)
	`

	_, err := r.db.ExecContext(ctx, query, defaults.GymName, defaults.OpenTime, defaults.CloseTime, defaults.Address, defaults.PhoneNumber, defaults.Email, defaults.Description, defaults.LogoURL)
	return err
}
