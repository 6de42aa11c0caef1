package models

import "time"

// StandingRow is one team's line in a competition table.
type StandingRow struct {
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	Group        string `json:"group,omitempty"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Draw         int    `json:"draw"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
	Yellow       int    `json:"yellow"`
	Red          int    `json:"red"`
}

type ScorerRow struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Goals      int    `json:"goals"`
}

type PlayerStats struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Yellow     int    `json:"yellow"`
	Red        int    `json:"red"`
	Matches    int    `json:"matches"`
}

// StandingSnapshot is a persisted table row, ranked at the time it was taken.
type StandingSnapshot struct {
	ID           int         `json:"id" db:"id"`
	TournamentID string      `json:"tournamentId" db:"tournament_id"`
	Rank         int         `json:"rank" db:"rank"`
	Row          StandingRow `json:"row"`
	TakenAt      time.Time   `json:"takenAt" db:"taken_at"`
}
