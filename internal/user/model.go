package user

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID           int        `db:"id" json:"id"`
	FullName     string     `db:"full_name" json:"full_name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	HeightCM     *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKG     *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	BodyType     *string    `db:"body_type" json:"body_type,omitempty"`
	ImageURL     *string    `db:"image_url" json:"image_url,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserWithStats is the admin listing row: the member plus how many
// appointments they have booked overall.
type UserWithStats struct {
	User
	AppointmentCount int `db:"appointment_count" json:"appointment_count"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// UpdateProfileRequest carries optional profile edits; nil fields keep
// their stored value.
type UpdateProfileRequest struct {
	FullName *string  `json:"full_name" binding:"omitempty,max=100"`
	HeightCM *float64 `json:"height_cm" binding:"omitempty,gt=0"`
	WeightKG *float64 `json:"weight_kg" binding:"omitempty,gt=0"`
	BodyType *string  `json:"body_type" binding:"omitempty,max=50"`
	ImageURL *string  `json:"image_url" binding:"omitempty,max=500"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
