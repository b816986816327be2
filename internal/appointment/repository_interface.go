package appointment

import (
	"context"
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
)

type Repository interface {
	// Create inserts the appointment inside a transaction that holds an
	// advisory lock on (trainer, date) and re-checks for overlapping
	// blocking appointments. Returns ErrTimeConflict when another booking
	// won the slot.
	Create(ctx context.Context, a *Appointment) (*Appointment, error)

	GetByID(ctx context.Context, id int) (*Appointment, error)
	GetByIDWithDetails(ctx context.Context, id int) (*AppointmentWithDetails, error)
	ListBusyForTrainerOnDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Interval, error)
	ListByUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error)
	ListAll(ctx context.Context) ([]AppointmentWithDetails, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
}
