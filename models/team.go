package models

import "time"

// Team is the minimal identity the standings engine needs.
type Team struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// TournamentTeam is a team row as stored for a tournament.
type TournamentTeam struct {
	Team
	TournamentID string    `json:"tournamentId" db:"tournament_id"`
	ShortName    *string   `json:"shortName,omitempty" db:"short_name"`
	LogoURL      *string   `json:"logoUrl,omitempty" db:"logo_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
