package standings

import (
	"cmp"
	"slices"

	"github.com/Dosada05/league-standings/models"
)

// DefaultScorerLimit is used when TopScorers is called with a non-positive limit.
const DefaultScorerLimit = 10

func countsAsGoal(t models.EventType) bool {
	return t == models.EventGoal || t == models.EventPenaltyScored
}

// playerOf returns the player id of an event, "" when the event has none.
func playerOf(ev models.MatchEvent) string {
	if ev.PlayerID == nil {
		return ""
	}
	return ev.PlayerID.ID
}

func playerNameOf(ev models.MatchEvent) string {
	if ev.PlayerName != "" {
		return ev.PlayerName
	}
	if ev.PlayerID != nil {
		return ev.PlayerID.Name
	}
	return ""
}

// TopScorers ranks players by goals and penalties scored. Own goals are never
// credited to the player who scored them.
func TopScorers(events []models.MatchEvent, limit int) []models.ScorerRow {
	if limit <= 0 {
		limit = DefaultScorerLimit
	}

	byPlayer := make(map[string]*models.ScorerRow)
	order := make([]string, 0)
	for _, ev := range events {
		if !countsAsGoal(ev.Type) {
			continue
		}
		pid := playerOf(ev)
		if pid == "" {
			continue
		}
		row, ok := byPlayer[pid]
		if !ok {
			row = &models.ScorerRow{PlayerID: pid, PlayerName: playerNameOf(ev), TeamID: refID(ev.TeamID)}
			byPlayer[pid] = row
			order = append(order, pid)
		}
		if row.PlayerName == "" {
			row.PlayerName = playerNameOf(ev)
		}
		row.Goals++
	}

	out := make([]models.ScorerRow, 0, len(order))
	for _, pid := range order {
		out = append(out, *byPlayer[pid])
	}
	slices.SortStableFunc(out, func(a, b models.ScorerRow) int {
		if c := cmp.Compare(b.Goals, a.Goals); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerName, b.PlayerName)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PlayerStatsFromEvents aggregates per-player goals, assists and cards, and
// counts the distinct matches each player appears in.
func PlayerStatsFromEvents(events []models.MatchEvent) []models.PlayerStats {
	byPlayer := make(map[string]*models.PlayerStats)
	matches := make(map[string]map[string]struct{})
	order := make([]string, 0)

	for _, ev := range events {
		pid := playerOf(ev)
		if pid == "" {
			continue
		}
		st, ok := byPlayer[pid]
		if !ok {
			st = &models.PlayerStats{PlayerID: pid, PlayerName: playerNameOf(ev), TeamID: refID(ev.TeamID)}
			byPlayer[pid] = st
			matches[pid] = make(map[string]struct{})
			order = append(order, pid)
		}
		if st.PlayerName == "" {
			st.PlayerName = playerNameOf(ev)
		}

		switch {
		case countsAsGoal(ev.Type):
			st.Goals++
		case ev.Type == models.EventAssist:
			st.Assists++
		case ev.Type == models.EventYellow:
			st.Yellow++
		case ev.Type == models.EventRed:
			st.Red++
		}
		if ev.MatchID != "" {
			matches[pid][ev.MatchID] = struct{}{}
		}
	}

	out := make([]models.PlayerStats, 0, len(order))
	for _, pid := range order {
		st := *byPlayer[pid]
		st.Matches = len(matches[pid])
		out = append(out, st)
	}
	slices.SortStableFunc(out, func(a, b models.PlayerStats) int {
		if c := cmp.Compare(b.Goals, a.Goals); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerName, b.PlayerName)
	})
	return out
}
