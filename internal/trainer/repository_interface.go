package trainer

import "context"

type Repository interface {
	Create(ctx context.Context, t *Trainer) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	ListAll(ctx context.Context) ([]Trainer, error)
	Update(ctx context.Context, t *Trainer) error
	Delete(ctx context.Context, id int) error

	SetServices(ctx context.Context, trainerID int, serviceIDs []int) error
	ListServiceIDs(ctx context.Context, trainerID int) ([]int, error)
	ListForService(ctx context.Context, serviceID int) ([]TrainerOption, error)

	CreateAvailability(ctx context.Context, a *Availability) (*Availability, error)
	ListAvailability(ctx context.Context, trainerID int) ([]Availability, error)
	GetActiveWindow(ctx context.Context, trainerID, dayOfWeek int) (*Availability, error)
	DeleteAvailability(ctx context.Context, id int) error
}
