package report

import (
	"context"
	"testing"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
	svc "github.com/Bal1m/FitnessCenterProject/internal/service"
	"github.com/Bal1m/FitnessCenterProject/internal/trainer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportRepo struct{ mock.Mock }
type MockTrainerRepo struct{ mock.Mock }
type MockServiceRepo struct{ mock.Mock }

func (m *MockReportRepo) Totals(ctx context.Context) (*Totals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Totals), args.Error(1)
}

func (m *MockReportRepo) AppointmentsByStatus(ctx context.Context) ([]StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StatusCount), args.Error(1)
}

func (m *MockReportRepo) Revenue(ctx context.Context) (*Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Revenue), args.Error(1)
}

func (m *MockReportRepo) RecentAppointments(ctx context.Context, limit int) ([]RecentAppointment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecentAppointment), args.Error(1)
}

func (m *MockTrainerRepo) Create(ctx context.Context, t *trainer.Trainer) (*trainer.Trainer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListAll(ctx context.Context) ([]trainer.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) Update(ctx context.Context, t *trainer.Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTrainerRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTrainerRepo) SetServices(ctx context.Context, trainerID int, serviceIDs []int) error {
	return m.Called(ctx, trainerID, serviceIDs).Error(0)
}

func (m *MockTrainerRepo) ListServiceIDs(ctx context.Context, trainerID int) ([]int, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockTrainerRepo) ListForService(ctx context.Context, serviceID int) ([]trainer.TrainerOption, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.TrainerOption), args.Error(1)
}

func (m *MockTrainerRepo) CreateAvailability(ctx context.Context, a *trainer.Availability) (*trainer.Availability, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Availability), args.Error(1)
}

func (m *MockTrainerRepo) ListAvailability(ctx context.Context, trainerID int) ([]trainer.Availability, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Availability), args.Error(1)
}

func (m *MockTrainerRepo) GetActiveWindow(ctx context.Context, trainerID, dayOfWeek int) (*trainer.Availability, error) {
	args := m.Called(ctx, trainerID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Availability), args.Error(1)
}

func (m *MockTrainerRepo) DeleteAvailability(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockServiceRepo) Create(ctx context.Context, name, description string, durationMinutes int, priceCents int64, isActive bool) (*svc.Service, error) {
	args := m.Called(ctx, name, description, durationMinutes, priceCents, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*svc.Service), args.Error(1)
}

func (m *MockServiceRepo) GetByID(ctx context.Context, id int) (*svc.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*svc.Service), args.Error(1)
}

func (m *MockServiceRepo) ListAll(ctx context.Context) ([]svc.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]svc.Service), args.Error(1)
}

func (m *MockServiceRepo) ListActive(ctx context.Context) ([]svc.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]svc.Service), args.Error(1)
}

func (m *MockServiceRepo) Update(ctx context.Context, s *svc.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestDashboard(t *testing.T) {
	rr := new(MockReportRepo)
	tr := new(MockTrainerRepo)
	sr := new(MockServiceRepo)

	rr.On("Totals", mock.Anything).Return(&Totals{Users: 100, Trainers: 6, Services: 4, Appointments: 250}, nil)
	rr.On("AppointmentsByStatus", mock.Anything).Return([]StatusCount{
		{Status: "completed", Count: 200},
		{Status: "pending", Count: 10},
	}, nil)
	rr.On("Revenue", mock.Anything).Return(&Revenue{TotalCents: 1000000, ThisMonthCents: 80000}, nil)
	rr.On("RecentAppointments", mock.Anything, 5).Return([]RecentAppointment{{ID: 42}}, nil)

	stats, err := NewService(rr, tr, sr).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 100, stats.Totals.Users)
	assert.Len(t, stats.AppointmentsByStatus, 2)
	assert.Equal(t, int64(80000), stats.Revenue.ThisMonthCents)
	assert.Len(t, stats.RecentAppointments, 1)
}

func TestTrainerReports_SkipsInactiveAndResolvesNames(t *testing.T) {
	rr := new(MockReportRepo)
	tr := new(MockTrainerRepo)
	sr := new(MockServiceRepo)

	tr.On("ListAll", mock.Anything).Return([]trainer.Trainer{
		{ID: 1, FullName: "Jordan Reyes", IsActive: true},
		{ID: 2, FullName: "Pat Doyle", IsActive: false},
	}, nil)
	sr.On("ListAll", mock.Anything).Return([]svc.Service{
		{ID: 10, Name: "Personal Training"},
		{ID: 11, Name: "Yoga"},
	}, nil)
	tr.On("ListServiceIDs", mock.Anything, 1).Return([]int{10, 11}, nil)
	tr.On("ListAvailability", mock.Anything, 1).Return([]trainer.Availability{
		{TrainerID: 1, DayOfWeek: 1, StartTime: schedule.TimeOfDay(540), EndTime: schedule.TimeOfDay(1020), IsActive: true},
	}, nil)

	reports, err := NewService(rr, tr, sr).TrainerReports(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Jordan Reyes", reports[0].FullName)
	assert.Equal(t, []string{"Personal Training", "Yoga"}, reports[0].Services)
	require.Len(t, reports[0].Availability, 1)
	tr.AssertNotCalled(t, "ListServiceIDs", mock.Anything, 2)
}

func TestTrainerReport_NotFound(t *testing.T) {
	rr := new(MockReportRepo)
	tr := new(MockTrainerRepo)
	sr := new(MockServiceRepo)

	tr.On("GetByID", mock.Anything, 99).Return(nil, trainer.ErrTrainerNotFound)

	_, err := NewService(rr, tr, sr).TrainerReport(context.Background(), 99)

	assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
}
