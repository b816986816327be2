package trainer

import (
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
)

type Trainer struct {
	ID             int       `db:"id" json:"id"`
	FullName       string    `db:"full_name" json:"full_name"`
	Email          string    `db:"email" json:"email"`
	PhoneNumber    *string   `db:"phone_number" json:"phone_number,omitempty"`
	Specialization string    `db:"specialization" json:"specialization"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	ImageURL       *string   `db:"image_url" json:"image_url,omitempty"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type TrainerWithServices struct {
	Trainer
	ServiceIDs []int `json:"service_ids"`
}

// Availability is one recurring working window of a trainer: every week
// on DayOfWeek, bookable between StartTime and EndTime.
type Availability struct {
	ID        int                `db:"id" json:"id"`
	TrainerID int                `db:"trainer_id" json:"trainer_id"`
	DayOfWeek int                `db:"day_of_week" json:"day_of_week"`
	StartTime schedule.TimeOfDay `db:"start_time" json:"start_time"`
	EndTime   schedule.TimeOfDay `db:"end_time" json:"end_time"`
	IsActive  bool               `db:"is_active" json:"is_active"`
}

// TrainerOption is the (id, name) pair that feeds the booking form's
// trainer dropdown for a selected service.
type TrainerOption struct {
	ID       int    `db:"id" json:"id"`
	FullName string `db:"full_name" json:"full_name"`
}

type CreateTrainerRequest struct {
	FullName       string  `json:"full_name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    *string `json:"phone_number"`
	Specialization string  `json:"specialization" binding:"required,max=200"`
	Bio            *string `json:"bio"`
	ImageURL       *string `json:"image_url"`
	IsActive       *bool   `json:"is_active"`
	ServiceIDs     []int   `json:"service_ids"`
}

type CreateAvailabilityRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}
