package trainer

import "github.com/lib/pq"

type Trainer struct {
	ID              int            `db:"id" json:"id"`
	UserID          int            `db:"user_id" json:"user_id"`
	Bio             string         `db:"bio" json:"bio"`
	Specializations pq.StringArray `db:"specializations" json:"specializations" swaggertype:"array,string"`
	PersonalPrice   *float64       `db:"personal_price" json:"personal_price,omitempty"`
	GroupPrice      *float64       `db:"group_price" json:"group_price,omitempty"`
}

// Profile is a trainer row joined with its user record plus the ids of the
// training types the trainer offers.
type Profile struct {
	Trainer
	FullName        string `db:"full_name" json:"full_name"`
	Email           string `db:"email" json:"email"`
	Phone           string `db:"phone" json:"phone"`
	TrainingTypeIDs []int  `db:"-" json:"training_type_ids"`
}

type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Phone           *string   `json:"phone"`
	Bio             *string   `json:"bio"`
	Specializations *[]string `json:"specializations"`
	PersonalPrice   *float64  `json:"personal_price"`
	GroupPrice      *float64  `json:"group_price"`
	TrainingTypeIDs *[]int    `json:"training_type_ids"`
}
