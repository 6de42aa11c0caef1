package models

import (
	"encoding/json"
	"strings"
	"time"
)

type EventType string

const (
	EventGoal          EventType = "goal"
	EventPenaltyScored EventType = "penalty_scored"
	EventOwnGoal       EventType = "own_goal"
	EventAssist        EventType = "assist"
	EventYellow        EventType = "yellow"
	EventRed           EventType = "red"
	EventPenaltyMissed EventType = "penalty_missed"
	EventSubIn         EventType = "sub_in"
	EventSubOut        EventType = "sub_out"
)

var legacyEventTypes = map[string]EventType{
	"gol":             EventGoal,
	"penalti_marcado": EventPenaltyScored,
	"autogol":         EventOwnGoal,
	"asistencia":      EventAssist,
	"amarilla":        EventYellow,
	"roja":            EventRed,
	"penalti_fallado": EventPenaltyMissed,
	"sub_id":          EventSubIn,
}

// NormalizeEventType maps legacy spellings onto the canonical event types.
// Unknown values are returned lower-cased and untouched otherwise.
func NormalizeEventType(raw string) EventType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := legacyEventTypes[s]; ok {
		return t
	}
	return EventType(s)
}

func (t *EventType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NormalizeEventType(raw)
	return nil
}

type EventStatus string

const (
	EventStatusProposed EventStatus = "proposed"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

// ApprovedEventStatuses covers the English and the legacy Spanish spelling.
var ApprovedEventStatuses = []EventStatus{EventStatusApproved, "aprobado"}

// MatchEvent is the lite event record consumed by discipline and scorer ranking.
type MatchEvent struct {
	ID           string      `json:"id,omitempty" db:"id"`
	MatchID      string      `json:"matchId" db:"match_id"`
	TournamentID string      `json:"tournamentId" db:"tournament_id"`
	TeamID       Ref         `json:"teamId" db:"team_id"`
	PlayerID     *Ref        `json:"playerId,omitempty" db:"player_id"`
	PlayerName   string      `json:"playerName,omitempty" db:"player_name"`
	Type         EventType   `json:"type" db:"type"`
	Minute       *int        `json:"minute,omitempty" db:"minute"`
	Status       EventStatus `json:"status,omitempty" db:"status"`
	CreatedAt    time.Time   `json:"createdAt,omitempty" db:"created_at"`
}
