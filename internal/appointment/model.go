package appointment

import (
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
)

// Status is the appointment lifecycle state. Creation always starts at
// Pending; admins approve, reject or complete; the owning member may
// cancel while Pending or Approved.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pending Approval",
	StatusApproved:  "Approved",
	StatusRejected:  "Rejected",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Blocking reports whether an appointment in this status still occupies
// the trainer's time. Cancelled and rejected appointments free the slot.
func (s Status) Blocking() bool {
	return s != StatusCancelled && s != StatusRejected
}

type Appointment struct {
	ID              int                `db:"id" json:"id"`
	UserID          int                `db:"user_id" json:"user_id"`
	TrainerID       int                `db:"trainer_id" json:"trainer_id"`
	ServiceID       int                `db:"service_id" json:"service_id"`
	Date            time.Time          `db:"appointment_date" json:"date"`
	StartTime       schedule.TimeOfDay `db:"start_time" json:"start_time"`
	EndTime         schedule.TimeOfDay `db:"end_time" json:"end_time"`
	TotalPriceCents int64              `db:"total_price_cents" json:"total_price_cents"`
	Status          Status             `db:"status" json:"status"`
	Notes           *string            `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time         `db:"updated_at" json:"updated_at,omitempty"`
}

type AppointmentWithDetails struct {
	Appointment
	ServiceName     string `db:"service_name" json:"service_name"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
	TrainerName     string `db:"trainer_name" json:"trainer_name"`
	UserName        string `db:"user_name" json:"user_name"`
	UserEmail       string `db:"user_email" json:"user_email"`
}

type CreateAppointmentRequest struct {
	ServiceID int    `json:"service_id" binding:"required"`
	TrainerID int    `json:"trainer_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	Notes     string `json:"notes" binding:"max=500"`
}
