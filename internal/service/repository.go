package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, description string, durationMinutes int, priceCents int64, isActive bool) (*Service, error) {
	query := `
		INSERT INTO services (name, description, duration_minutes, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, name, description, durationMinutes, priceCents, isActive)
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE id = $1
	`

	var svc Service
	err := r.db.GetContext(ctx, &svc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &svc, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		ORDER BY created_at DESC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Service, error) {
	query := `
		SELECT id, name, description, duration_minutes, price_cents, is_active, created_at
		FROM services
		WHERE is_active = true
		ORDER BY name ASC
	`

	var services []Service
	err := r.db.SelectContext(ctx, &services, query)
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *repository) Update(ctx context.Context, s *Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, duration_minutes = $4, price_cents = $5, is_active = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Description, s.DurationMinutes, s.PriceCents, s.IsActive)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
