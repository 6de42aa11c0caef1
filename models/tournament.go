package models

import "time"

// TournamentStatus mirrors the tournament_status enum in the schema.
type TournamentStatus string

const (
	StatusSoon         TournamentStatus = "soon"
	StatusRegistration TournamentStatus = "registration"
	StatusActive       TournamentStatus = "active"
	StatusCompleted    TournamentStatus = "completed"
	StatusCanceled     TournamentStatus = "canceled"
)

type Tournament struct {
	ID          string           `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description,omitempty" db:"description"`
	Location    *string          `json:"location,omitempty" db:"location"`
	Status      TournamentStatus `json:"status" db:"status"`
	ManagerID   *string          `json:"managerId,omitempty" db:"manager_id"`
	StartDate   time.Time        `json:"startDate" db:"start_date"`
	EndDate     time.Time        `json:"endDate" db:"end_date"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
