package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/logger"
	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
	svc "github.com/Bal1m/FitnessCenterProject/internal/service"
	"github.com/Bal1m/FitnessCenterProject/internal/trainer"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrTrainerNotFound     = errors.New("trainer not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrTimeConflict: the trainer already has a blocking appointment
	// overlapping the requested interval.
	ErrTimeConflict = errors.New("trainer already has an appointment at the selected time")

	// ErrTrainerUnavailable: the interval is outside the trainer's active
	// working window for that weekday, or there is no window at all.
	ErrTrainerUnavailable = errors.New("trainer is not available at the selected time")

	ErrNotOwner        = errors.New("appointment belongs to another user")
	ErrNotCancellable  = errors.New("only pending or approved appointments can be cancelled")
	ErrPastAppointment = errors.New("past appointments cannot be cancelled")
)

// Mailer delivers best-effort booking notifications. A nil Mailer
// disables them.
type Mailer interface {
	SendAppointmentCreated(ctx context.Context, to, name, serviceName, trainerName, when string) error
	SendAppointmentStatus(ctx context.Context, to, name, serviceName, when, statusLabel string) error
}

type CreateInput struct {
	TrainerID int
	ServiceID int
	Date      time.Time
	StartTime schedule.TimeOfDay
	Notes     string
}

type Service interface {
	AvailableSlots(ctx context.Context, trainerID, serviceID int, date time.Time) ([]schedule.Slot, error)
	Create(ctx context.Context, userID int, in CreateInput) (*Appointment, error)
	Cancel(ctx context.Context, appointmentID, userID int) error
	Approve(ctx context.Context, appointmentID int) error
	Reject(ctx context.Context, appointmentID int) error
	Complete(ctx context.Context, appointmentID int) error
	Remove(ctx context.Context, appointmentID int) error
	ListForUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error)
	GetForUser(ctx context.Context, appointmentID, userID int) (*AppointmentWithDetails, error)
	ListAll(ctx context.Context) ([]AppointmentWithDetails, error)
}

type service struct {
	appointments Repository
	trainers     trainer.Repository
	catalog      svc.Repository
	clock        schedule.Clock
	mailer       Mailer
}

func NewService(appointments Repository, trainers trainer.Repository, catalog svc.Repository, clock schedule.Clock, mailer Mailer) Service {
	return &service{
		appointments: appointments,
		trainers:     trainers,
		catalog:      catalog,
		clock:        clock,
		mailer:       mailer,
	}
}

// AvailableSlots computes the bookable start times for a trainer,
// service and date. "No slots" (unknown or inactive service, no working
// window that weekday) is an empty result, not an error.
func (s *service) AvailableSlots(ctx context.Context, trainerID, serviceID int, date time.Time) ([]schedule.Slot, error) {
	offering, err := s.catalog.GetByID(ctx, serviceID)
	if errors.Is(err, svc.ErrServiceNotFound) {
		return []schedule.Slot{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !offering.IsActive {
		return []schedule.Slot{}, nil
	}

	window, err := s.trainers.GetActiveWindow(ctx, trainerID, int(date.Weekday()))
	if errors.Is(err, trainer.ErrNoActiveWindow) {
		return []schedule.Slot{}, nil
	}
	if err != nil {
		return nil, err
	}

	busy, err := s.appointments.ListBusyForTrainerOnDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	// Slots that already started are only filtered on the current day.
	var cutoff *schedule.TimeOfDay
	now := s.clock.Now()
	if schedule.SameDate(date, now) {
		c := schedule.TimeOfDayFrom(now)
		cutoff = &c
	}

	return schedule.Slots(window.StartTime, window.EndTime, offering.DurationMinutes, busy, cutoff), nil
}

func (s *service) Create(ctx context.Context, userID int, in CreateInput) (*Appointment, error) {
	offering, err := s.catalog.GetByID(ctx, in.ServiceID)
	if errors.Is(err, svc.ErrServiceNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	tr, err := s.trainers.GetByID(ctx, in.TrainerID)
	if errors.Is(err, trainer.ErrTrainerNotFound) {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}

	endTime := in.StartTime.AddMinutes(offering.DurationMinutes)

	busy, err := s.appointments.ListBusyForTrainerOnDate(ctx, in.TrainerID, in.Date)
	if err != nil {
		return nil, err
	}
	if schedule.OverlapsAny(in.StartTime, endTime, busy) {
		return nil, ErrTimeConflict
	}

	window, err := s.trainers.GetActiveWindow(ctx, in.TrainerID, int(in.Date.Weekday()))
	if errors.Is(err, trainer.ErrNoActiveWindow) {
		return nil, ErrTrainerUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !schedule.Contains(window.StartTime, window.EndTime, in.StartTime, endTime) {
		return nil, ErrTrainerUnavailable
	}

	var notes *string
	if in.Notes != "" {
		notes = &in.Notes
	}

	// Price is frozen at booking time; later catalog edits must not
	// change what was agreed.
	created, err := s.appointments.Create(ctx, &Appointment{
		UserID:          userID,
		TrainerID:       in.TrainerID,
		ServiceID:       in.ServiceID,
		Date:            schedule.DateOnly(in.Date),
		StartTime:       in.StartTime,
		EndTime:         endTime,
		TotalPriceCents: offering.PriceCents,
		Status:          StatusPending,
		Notes:           notes,
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, created.ID, offering.Name, tr.FullName)

	return created, nil
}

func (s *service) Cancel(ctx context.Context, appointmentID, userID int) error {
	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if a.UserID != userID {
		return ErrNotOwner
	}

	// The date check comes first so an elapsed appointment always reports
	// as past, whatever its status. Calendar comparison, not instants:
	// the stored date is UTC midnight while the clock is zone-local.
	if schedule.BeforeDate(a.Date, s.clock.Now()) {
		return ErrPastAppointment
	}

	if a.Status != StatusPending && a.Status != StatusApproved {
		return ErrNotCancellable
	}

	return s.appointments.UpdateStatus(ctx, appointmentID, StatusCancelled)
}

func (s *service) Approve(ctx context.Context, appointmentID int) error {
	return s.transition(ctx, appointmentID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, appointmentID int) error {
	return s.transition(ctx, appointmentID, StatusRejected)
}

func (s *service) Complete(ctx context.Context, appointmentID int) error {
	return s.transition(ctx, appointmentID, StatusCompleted)
}

// transition applies an admin status change and queues a notification.
// Admin transitions are trusted and not otherwise validated.
func (s *service) transition(ctx context.Context, appointmentID int, status Status) error {
	if err := s.appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		return err
	}

	s.notifyStatus(ctx, appointmentID, status)
	return nil
}

func (s *service) Remove(ctx context.Context, appointmentID int) error {
	return s.appointments.Delete(ctx, appointmentID)
}

func (s *service) ListForUser(ctx context.Context, userID int) ([]AppointmentWithDetails, error) {
	return s.appointments.ListByUser(ctx, userID)
}

// GetForUser loads appointment details scoped to the owner; foreign
// appointments report as not found, matching the user-facing pages.
func (s *service) GetForUser(ctx context.Context, appointmentID, userID int) (*AppointmentWithDetails, error) {
	a, err := s.appointments.GetByIDWithDetails(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

func (s *service) ListAll(ctx context.Context) ([]AppointmentWithDetails, error) {
	return s.appointments.ListAll(ctx)
}

func formatWhen(a *AppointmentWithDetails) string {
	return fmt.Sprintf("%s %s - %s", a.Date.Format("Jan 2, 2006"), a.StartTime, a.EndTime)
}

func (s *service) notifyCreated(ctx context.Context, appointmentID int, serviceName, trainerName string) {
	if s.mailer == nil {
		return
	}

	details, err := s.appointments.GetByIDWithDetails(ctx, appointmentID)
	if err != nil {
		logger.Errorf("Failed to load appointment %d for confirmation email: %v", appointmentID, err)
		return
	}

	if err := s.mailer.SendAppointmentCreated(ctx, details.UserEmail, details.UserName, serviceName, trainerName, formatWhen(details)); err != nil {
		logger.Errorf("Failed to queue confirmation email for appointment %d: %v", appointmentID, err)
	}
}

func (s *service) notifyStatus(ctx context.Context, appointmentID int, status Status) {
	if s.mailer == nil {
		return
	}

	details, err := s.appointments.GetByIDWithDetails(ctx, appointmentID)
	if err != nil {
		logger.Errorf("Failed to load appointment %d for status email: %v", appointmentID, err)
		return
	}

	if err := s.mailer.SendAppointmentStatus(ctx, details.UserEmail, details.UserName, details.ServiceName, formatWhen(details), status.Label()); err != nil {
		logger.Errorf("Failed to queue status email for appointment %d: %v", appointmentID, err)
	}
}
