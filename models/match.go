package models

import (
	"strings"
	"time"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusFinished   MatchStatus = "finished"
	MatchStatusCancelled  MatchStatus = "cancelled"
	MatchStatusWalkover   MatchStatus = "walkover"

	// Spanish spellings still present on historical records.
	MatchStatusProgramado MatchStatus = "programado"
	MatchStatusEnProgreso MatchStatus = "en progreso"
	MatchStatusTerminado  MatchStatus = "terminado"
	MatchStatusCancelado  MatchStatus = "cancelado"
)

// FinishedStatuses lists every spelling that marks a match as finished.
var FinishedStatuses = []MatchStatus{MatchStatusFinished, MatchStatusTerminado}

// IsFinished reports whether the status is one of the finished synonyms.
func (s MatchStatus) IsFinished() bool {
	switch MatchStatus(strings.ToLower(strings.TrimSpace(string(s)))) {
	case MatchStatusFinished, MatchStatusTerminado:
		return true
	}
	return false
}

type MatchPhase string

const (
	PhaseGroups   MatchPhase = "grupos"
	PhaseKnockout MatchPhase = "eliminatoria"
	PhaseSemi     MatchPhase = "semifinal"
	PhaseFinal    MatchPhase = "final"
)

var phaseAliases = map[string]MatchPhase{
	"grupos":       PhaseGroups,
	"group":        PhaseGroups,
	"groups":       PhaseGroups,
	"eliminatoria": PhaseKnockout,
	"knockout":     PhaseKnockout,
	"semifinal":    PhaseSemi,
	"semi":         PhaseSemi,
	"final":        PhaseFinal,
}

// ParseMatchPhase accepts the stored Spanish names and their English aliases.
func ParseMatchPhase(raw string) (MatchPhase, bool) {
	p, ok := phaseAliases[strings.ToLower(strings.TrimSpace(raw))]
	return p, ok
}

type ConfirmedBy string

const (
	ConfirmedByManager ConfirmedBy = "manager"
	ConfirmedByAdmin   ConfirmedBy = "admin"
)

// Score holds goals per side. Missing fields decode as 0.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Match struct {
	ID           string       `json:"id" db:"id"`
	TournamentID string       `json:"tournamentId" db:"tournament_id"`
	Round        string       `json:"round,omitempty" db:"round"`
	Phase        MatchPhase   `json:"phase,omitempty" db:"phase"`
	Group        string       `json:"group,omitempty" db:"group_label"`
	Date         time.Time    `json:"date" db:"match_date"`
	Field        string       `json:"field,omitempty" db:"field"`
	HomeTeamID   Ref          `json:"homeTeamId" db:"home_team_id"`
	AwayTeamID   Ref          `json:"awayTeamId" db:"away_team_id"`
	Referee      string       `json:"referee,omitempty" db:"referee"`
	Status       MatchStatus  `json:"status" db:"status"`
	Score        Score        `json:"score"`
	ConfirmedBy  *ConfirmedBy `json:"confirmedBy" db:"confirmed_by"`
	Notes        string       `json:"notes,omitempty" db:"notes"`
	CreatedBy    string       `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}
