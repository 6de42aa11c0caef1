package standings

import (
	"cmp"
	"slices"

	"github.com/Dosada05/league-standings/models"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// IsFinished reports whether a match counts towards the table.
func IsFinished(m models.Match) bool {
	return m.Status.IsFinished()
}

// refID is the single place a team reference is resolved to a bare id.
func refID(r models.Ref) string {
	return r.TeamID()
}

// Compute builds one row per team and folds every finished match into it.
// Matches that reference a team outside the list are skipped entirely.
func Compute(teams []models.Team, matches []models.Match) []models.StandingRow {
	rows := make([]*models.StandingRow, 0, len(teams))
	byID := make(map[string]*models.StandingRow, len(teams))
	for _, t := range teams {
		if row, ok := byID[t.ID]; ok {
			row.TeamName = t.Name
			continue
		}
		row := &models.StandingRow{TeamID: t.ID, TeamName: t.Name}
		byID[t.ID] = row
		rows = append(rows, row)
	}

	for _, m := range matches {
		if !IsFinished(m) {
			continue
		}
		home, okHome := byID[refID(m.HomeTeamID)]
		away, okAway := byID[refID(m.AwayTeamID)]
		if !okHome || !okAway {
			continue
		}
		fold(home, away, m.Score.Home, m.Score.Away)
	}

	out := make([]models.StandingRow, len(rows))
	for i, row := range rows {
		out[i] = *row
	}
	SortTable(out)
	return out
}

// fold applies one result. home and away may be the same row when a record
// pairs a team with itself; that case is counted twice on purpose.
func fold(home, away *models.StandingRow, homeGoals, awayGoals int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals

	switch {
	case homeGoals > awayGoals:
		home.Won++
		away.Lost++
		home.Points += pointsWin
	case homeGoals < awayGoals:
		away.Won++
		home.Lost++
		away.Points += pointsWin
	default:
		home.Draw++
		away.Draw++
		home.Points += pointsDraw
		away.Points += pointsDraw
	}

	home.GoalDiff = home.GoalsFor - home.GoalsAgainst
	away.GoalDiff = away.GoalsFor - away.GoalsAgainst
}

// SortTable orders rows by points, goal difference and goals scored, all
// descending, then by team name. The sort is stable.
func SortTable(rows []models.StandingRow) {
	slices.SortStableFunc(rows, compareRows)
}

func compareRows(a, b models.StandingRow) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDiff, a.GoalDiff); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	return cmp.Compare(a.TeamName, b.TeamName)
}
