package gym

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
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

func settingsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "gym_name", "open_time", "close_time", "address", "phone_number", "email", "description", "logo_url"}).
		AddRow(1, "Fitness Center", "06:00:00", "23:00:00", "12 High Street", nil, "info@fitnesscenter.com", nil, nil)
}

func TestGetSettings(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, gym_name, open_time, close_time, address, phone_number, email, description, logo_url FROM gym_settings ORDER BY id LIMIT 1")).
		WillReturnRows(settingsRows())

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Fitness Center", got.GymName)
	require.Equal(t, schedule.NewTimeOfDay(6, 0), got.OpenTime)
	require.Equal(t, schedule.NewTimeOfDay(23, 0), got.CloseTime)
}

func TestGetSettingsNotSeeded(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdateSettings(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	address := "12 High Street"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE gym_settings SET gym_name = $2, open_time = $3, close_time = $4, address = $5, phone_number = $6, email = $7, description = $8, logo_url = $9 WHERE id = $1")).
		WithArgs(1, "Fitness Center", "07:00:00", "22:00:00", "12 High Street", nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &Settings{
		ID:        1,
		GymName:   "Fitness Center",
		OpenTime:  schedule.NewTimeOfDay(7, 0),
		CloseTime: schedule.NewTimeOfDay(22, 0),
		Address:   &address,
	})
	require.NoError(t, err)
}

func TestUpdateSettingsMissingRow(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE gym_settings").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &Settings{ID: 1, GymName: "Fitness Center"})
	require.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestEnsureDefaults(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gym_settings (gym_name, open_time, close_time, address, phone_number, email, description, logo_url) SELECT $1, $2, $3, $4, $5, $6, $7, $8 WHERE NOT EXISTS (SELECT 1 FROM gym_settings)")).
		WithArgs("Fitness Center", "06:00:00", "23:00:00", nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.EnsureDefaults(context.Background(), &Settings{
		GymName:   "Fitness Center",
		OpenTime:  schedule.NewTimeOfDay(6, 0),
		CloseTime: schedule.NewTimeOfDay(23, 0),
	})
	require.NoError(t, err)
}
