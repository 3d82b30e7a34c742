package user

import "time"

const (
	RoleClient  = "CLIENT"
	RoleTrainer = "TRAINER"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterRequest carries the shared identity fields plus the role-specific
// profile fields; the ones for the other role are simply ignored.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=CLIENT TRAINER"`

	// CLIENT profile
	DateOfBirth       string `json:"date_of_birth"`
	HealthInformation string `json:"health_information"`
	FitnessGoals      string `json:"fitness_goals"`

	// TRAINER profile
	Bio             string   `json:"bio"`
	Specializations []string `json:"specializations"`
	PersonalPrice   *float64 `json:"personal_price"`
	GroupPrice      *float64 `json:"group_price"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	ProfileID int    `json:"profile_id"`
	Token     string `json:"token"`
}
