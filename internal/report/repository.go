package report

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Totals(ctx context.Context) (*Totals, error)
	AppointmentsByStatus(ctx context.Context) ([]StatusCount, error)
	Revenue(ctx context.Context) (*Revenue, error)
	RecentAppointments(ctx context.Context, limit int) ([]RecentAppointment, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Totals(ctx context.Context) (*Totals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM trainers) AS trainers,
			(SELECT COUNT(*) FROM services) AS services,
			(SELECT COUNT(*) FROM appointments) AS appointments
	`

	var t Totals
	if err := r.db.GetContext(ctx, &t, query); err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) AppointmentsByStatus(ctx context.Context) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM appointments
		GROUP BY status
		ORDER BY status
	`

	var counts []StatusCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *repository) Revenue(ctx context.Context) (*Revenue, error) {
	query := `
		SELECT
			COALESCE(SUM(total_price_cents), 0) AS total_cents,
			COALESCE(SUM(total_price_cents) FILTER (WHERE date_trunc('month', appointment_date) = date_trunc('month', CURRENT_DATE)), 0) AS this_month_cents
		FROM appointments
		WHERE status = 'completed'
	`

	var rev Revenue
	if err := r.db.GetContext(ctx, &rev, query); err != nil {
		return nil, err
	}

	return &rev, nil
}

func (r *repository) RecentAppointments(ctx context.Context, limit int) ([]RecentAppointment, error) {
	query := `
		SELECT a.id, u.full_name AS user_name, t.full_name AS trainer_name, s.name AS service_name,
		       a.appointment_date, a.start_time, a.status, a.created_at
		FROM appointments a
		JOIN users u ON a.user_id = u.id
		JOIN trainers t ON a.trainer_id = t.id
		JOIN services s ON a.service_id = s.id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	var recent []RecentAppointment
	if err := r.db.SelectContext(ctx, &recent, query, limit); err != nil {
		return nil, err
	}

	return recent, nil
}
