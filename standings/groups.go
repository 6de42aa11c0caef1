package standings

import (
	"slices"
	"strings"

	"github.com/Dosada05/league-standings/models"
)

// DefaultGroup labels the single table returned when no match carries a group.
const DefaultGroup = "A"

// groupLabel returns the trimmed group of a match, "" when it has none.
func groupLabel(m models.Match) string {
	return strings.TrimSpace(m.Group)
}

// ComputeByGroup partitions finished matches by their group label and
// computes one table per group. Group mode only kicks in when at least one
// finished match has a label; otherwise the whole tournament is returned
// under DefaultGroup.
func ComputeByGroup(teams []models.Team, matches []models.Match) map[string][]models.StandingRow {
	finishedByGroup := make(map[string][]models.Match)
	for _, m := range matches {
		if !IsFinished(m) {
			continue
		}
		if g := groupLabel(m); g != "" {
			finishedByGroup[g] = append(finishedByGroup[g], m)
		}
	}

	if len(finishedByGroup) == 0 {
		return map[string][]models.StandingRow{DefaultGroup: Compute(teams, matches)}
	}

	out := make(map[string][]models.StandingRow, len(finishedByGroup))
	for g, groupMatches := range finishedByGroup {
		ids := make(map[string]struct{})
		for _, m := range groupMatches {
			ids[refID(m.HomeTeamID)] = struct{}{}
			ids[refID(m.AwayTeamID)] = struct{}{}
		}

		groupTeams := make([]models.Team, 0, len(ids))
		for _, t := range teams {
			if _, ok := ids[t.ID]; ok {
				groupTeams = append(groupTeams, t)
			}
		}

		rows := Compute(groupTeams, groupMatches)
		for i := range rows {
			rows[i].Group = g
		}
		out[g] = rows
	}
	return out
}

// GroupLabels returns the labels of a grouped table in ascending order.
func GroupLabels(grouped map[string][]models.StandingRow) []string {
	labels := make([]string, 0, len(grouped))
	for g := range grouped {
		labels = append(labels, g)
	}
	slices.Sort(labels)
	return labels
}
