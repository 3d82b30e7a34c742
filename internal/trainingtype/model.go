package trainingtype

const (
	CategoryPersonal = "PERSONAL"
	CategoryGroup    = "GROUP"
)

type TrainingType struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Duration    int    `db:"duration" json:"duration"`
	Category    string `db:"category" json:"category"`
	MaxClients  int    `db:"max_clients" json:"max_clients"`
}

type CreateTrainingTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	Category    string `json:"category" binding:"required,oneof=PERSONAL GROUP"`
	MaxClients  int    `json:"max_clients" binding:"omitempty,min=1"`
}

type UpdateTrainingTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	Category    string `json:"category" binding:"required,oneof=PERSONAL GROUP"`
	MaxClients  int    `json:"max_clients" binding:"omitempty,min=1"`
}
