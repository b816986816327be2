package gym

import "github.com/Bal1m/FitnessCenterProject/internal/schedule"

// Settings is the single gym profile row: public contact details plus
// the opening hours shown on the booking pages. Trainer availability
// windows, not these hours, decide what is actually bookable.
type Settings struct {
	ID          int                `db:"id" json:"id"`
	GymName     string             `db:"gym_name" json:"gym_name"`
	OpenTime    schedule.TimeOfDay `db:"open_time" json:"open_time"`
	CloseTime   schedule.TimeOfDay `db:"close_time" json:"close_time"`
	Address     *string            `db:"address" json:"address,omitempty"`
	PhoneNumber *string            `db:"phone_number" json:"phone_number,omitempty"`
	Email       *string            `db:"email" json:"email,omitempty"`
	Description *string            `db:"description" json:"description,omitempty"`
	LogoURL     *string            `db:"logo_url" json:"logo_url,omitempty"`
}

type UpdateSettingsRequest struct {
	GymName     string  `json:"gym_name" binding:"required,max=200"`
	OpenTime    string  `json:"open_time" binding:"required"`
	CloseTime   string  `json:"close_time" binding:"required"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=30"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,max=500"`
}
