package service

import "context"

type Repository interface {
	Create(ctx context.Context, name, description string, durationMinutes int, priceCents int64, isActive bool) (*Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	ListAll(ctx context.Context) ([]Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id int) error
}
