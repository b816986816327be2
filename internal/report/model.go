package report

import (
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
	"github.com/Bal1m/FitnessCenterProject/internal/trainer"
)

type Totals struct {
	Users        int `db:"users" json:"users"`
	Trainers     int `db:"trainers" json:"trainers"`
	Services     int `db:"services" json:"services"`
	Appointments int `db:"appointments" json:"appointments"`
}

type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// Revenue sums completed appointments only; money is integer cents.
type Revenue struct {
	TotalCents     int64 `db:"total_cents" json:"total_cents"`
	ThisMonthCents int64 `db:"this_month_cents" json:"this_month_cents"`
}

type RecentAppointment struct {
	ID          int                `db:"id" json:"id"`
	UserName    string             `db:"user_name" json:"user_name"`
	TrainerName string             `db:"trainer_name" json:"trainer_name"`
	ServiceName string             `db:"service_name" json:"service_name"`
	Date        time.Time          `db:"appointment_date" json:"date"`
	StartTime   schedule.TimeOfDay `db:"start_time" json:"start_time"`
	Status      string             `db:"status" json:"status"`
	CreatedAt   time.Time          `db:"created_at" json:"created_at"`
}

type DashboardStats struct {
	Totals             Totals              `json:"totals"`
	AppointmentsByStatus []StatusCount     `json:"appointments_by_status"`
	Revenue            Revenue             `json:"revenue"`
	RecentAppointments []RecentAppointment `json:"recent_appointments"`
}

// TrainerReport is the staffing view: a trainer plus the services they
// deliver and their weekly working windows.
type TrainerReport struct {
	trainer.Trainer
	Services     []string               `json:"services"`
	Availability []trainer.Availability `json:"availability"`
}
