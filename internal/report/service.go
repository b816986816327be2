package report

import (
	"context"

	svc "github.com/Bal1m/FitnessCenterProject/internal/service"
	"github.com/Bal1m/FitnessCenterProject/internal/trainer"
)

const recentLimit = 5

type Service struct {
	reports  Repository
	trainers trainer.Repository
	catalog  svc.Repository
}

func NewService(reports Repository, trainers trainer.Repository, catalog svc.Repository) *Service {
	return &Service{
		reports:  reports,
		trainers: trainers,
		catalog:  catalog,
	}
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totals, err := s.reports.Totals(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.reports.AppointmentsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.reports.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.reports.RecentAppointments(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Totals:               *totals,
		AppointmentsByStatus: byStatus,
		Revenue:              *revenue,
		RecentAppointments:   recent,
	}, nil
}

// TrainerReports lists every active trainer with resolved service names
// and weekly availability.
func (s *Service) TrainerReports(ctx context.Context) ([]TrainerReport, error) {
	trainers, err := s.trainers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	serviceNames, err := s.serviceNameIndex(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]TrainerReport, 0, len(trainers))
	for _, t := range trainers {
		if !t.IsActive {
			continue
		}

		report, err := s.buildTrainerReport(ctx, t, serviceNames)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

func (s *Service) TrainerReport(ctx context.Context, trainerID int) (*TrainerReport, error) {
	t, err := s.trainers.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	serviceNames, err := s.serviceNameIndex(ctx)
	if err != nil {
		return nil, err
	}

	return s.buildTrainerReport(ctx, *t, serviceNames)
}

func (s *Service) serviceNameIndex(ctx context.Context) (map[int]string, error) {
	services, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[int]string, len(services))
	for _, service := range services {
		index[service.ID] = service.Name
	}
	return index, nil
}

func (s *Service) buildTrainerReport(ctx context.Context, t trainer.Trainer, serviceNames map[int]string) (*TrainerReport, error) {
	serviceIDs, err := s.trainers.ListServiceIDs(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if name, ok := serviceNames[id]; ok {
			names = append(names, name)
		}
	}

	availability, err := s.trainers.ListAvailability(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	return &TrainerReport{
		Trainer:      t,
		Services:     names,
		Availability: availability,
	}, nil
}
