package service

import "time"

// Service is one bookable offering of the gym (fitness session, yoga
// class, ...). Duration drives appointment end times; price is copied
// onto appointments at booking time, so editing it here never changes
// existing bookings.
type Service struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=500"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	IsActive        *bool  `json:"is_active"`
}
