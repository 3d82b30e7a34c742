package client

import "time"

type Client struct {
	ID                int        `db:"id" json:"id"`
	UserID            int        `db:"user_id" json:"user_id"`
	DateOfBirth       *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	HealthInformation string     `db:"health_information" json:"health_information"`
	FitnessGoals      string     `db:"fitness_goals" json:"fitness_goals"`
}

// Profile is a client row joined with its user record, the shape returned
// to the API.
type Profile struct {
	Client
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
}

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"date_of_birth"`
	HealthInformation *string `json:"health_information"`
	FitnessGoals      *string `json:"fitness_goals"`
}
