package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func serviceRows(t time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "duration_minutes", "price_cents", "is_active", "created_at"}).
		AddRow(1, "Fitness", "Personal training", 60, int64(25000), true, t)
}

func TestCreateAndGetService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO services (name, description, duration_minutes, price_cents, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, description, duration_minutes, price_cents, is_active, created_at")).
		WithArgs("Fitness", "Personal training", 60, int64(25000), true).
		WillReturnRows(serviceRows(now))

	svc, err := repo.Create(ctx, "Fitness", "Personal training", 60, 25000, true)
	require.NoError(t, err)
	require.Equal(t, 1, svc.ID)
	require.Equal(t, int64(25000), svc.PriceCents)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, duration_minutes, price_cents, is_active, created_at FROM services WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(serviceRows(now))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 60, got.DurationMinutes)
}

func TestGetServiceNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, duration_minutes, price_cents, is_active, created_at FROM services WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateServiceNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET name = $2, description = $3, duration_minutes = $4, price_cents = $5, is_active = $6 WHERE id = $1")).
		WithArgs(7, "Yoga", "", 45, int64(20000), true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &Service{ID: 7, Name: "Yoga", DurationMinutes: 45, PriceCents: 20000, IsActive: true})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 4), ErrServiceNotFound)
}
