package user

import "context"

type Repository interface {
	Create(ctx context.Context, fullName, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, u *User) error
	ListWithAppointmentCounts(ctx context.Context) ([]UserWithStats, error)
	SetActive(ctx context.Context, id int, active bool) error
}
