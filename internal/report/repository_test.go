package report

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupReportMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestTotals(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) AS users, (.+) AS trainers, (.+) AS services, (.+) AS appointments").
		WillReturnRows(sqlmock.NewRows([]string{"users", "trainers", "services", "appointments"}).
			AddRow(120, 8, 5, 340))

	totals, err := repo.Totals(context.Background())
	require.NoError(t, err)
	require.Equal(t, 120, totals.Users)
	require.Equal(t, 340, totals.Appointments)
}

func TestAppointmentsByStatus(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("approved", 12).
		AddRow("completed", 200).
		AddRow("pending", 4)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) AS count FROM appointments GROUP BY status ORDER BY status")).
		WillReturnRows(rows)

	counts, err := repo.AppointmentsByStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 3)
	require.Equal(t, "completed", counts[1].Status)
	require.Equal(t, 200, counts[1].Count)
}

func TestRevenue(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	mock.ExpectQuery("SELECT (.+) AS total_cents, (.+) AS this_month_cents FROM appointments WHERE status = 'completed'").
		WillReturnRows(sqlmock.NewRows([]string{"total_cents", "this_month_cents"}).
			AddRow(int64(1250000), int64(98000)))

	rev, err := repo.Revenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1250000), rev.TotalCents)
	require.Equal(t, int64(98000), rev.ThisMonthCents)
}

func TestRecentAppointments(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	now := time.Now()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_name", "trainer_name", "service_name", "appointment_date", "start_time", "status", "created_at"}).
		AddRow(42, "Sam Carter", "Jordan Reyes", "Personal Training", date, "10:00:00", "pending", now)

	mock.ExpectQuery("SELECT a.id, u.full_name AS user_name, t.full_name AS trainer_name").
		WithArgs(5).
		WillReturnRows(rows)

	recent, err := repo.RecentAppointments(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "Personal Training", recent[0].ServiceName)
	require.Equal(t, "10:00", recent[0].StartTime.String())
}
