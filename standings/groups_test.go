package standings

import (
	"reflect"
	"testing"

	"github.com/Dosada05/league-standings/models"
)

func inGroup(m models.Match, g string) models.Match {
	m.Group = g
	return m
}

func TestComputeByGroupFallback(t *testing.T) {
	teams := twoTeams()
	matches := []models.Match{finished("H", "A", 2, 1)}

	grouped := ComputeByGroup(teams, matches)
	if len(grouped) != 1 {
		t.Fatalf("want a single group, got %d", len(grouped))
	}
	table, ok := grouped[DefaultGroup]
	if !ok {
		t.Fatalf("want group %q, got %v", DefaultGroup, GroupLabels(grouped))
	}
	if want := Compute(teams, matches); !reflect.DeepEqual(table, want) {
		t.Errorf("fallback table differs from the full table:\nwant %+v\ngot  %+v", want, table)
	}
}

func TestComputeByGroupIgnoresLabelsOnUnfinishedMatches(t *testing.T) {
	pending := inGroup(finished("H", "A", 1, 0), "B")
	pending.Status = models.MatchStatusScheduled

	grouped := ComputeByGroup(twoTeams(), []models.Match{pending, finished("H", "A", 1, 0)})
	if _, ok := grouped[DefaultGroup]; !ok || len(grouped) != 1 {
		t.Fatalf("want only the fallback group, got %v", GroupLabels(grouped))
	}
}

func TestComputeByGroupPartitions(t *testing.T) {
	teams := []models.Team{
		{ID: "a1", Name: "Ajax"},
		{ID: "a2", Name: "Arsenal"},
		{ID: "b1", Name: "Benfica"},
		{ID: "b2", Name: "Boca"},
		{ID: "z", Name: "Zenit"},
	}
	matches := []models.Match{
		inGroup(finished("a1", "a2", 0, 2), "A"),
		inGroup(finished("b1", "b2", 1, 1), " B "),
		inGroup(finished("b2", "b1", 3, 0), "B"),
		finished("a1", "b1", 9, 0),
	}

	grouped := ComputeByGroup(teams, matches)
	if got := GroupLabels(grouped); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("labels: want [A B], got %v", got)
	}

	a := grouped["A"]
	if len(a) != 2 {
		t.Fatalf("group A: want 2 rows, got %d", len(a))
	}
	if a[0].TeamID != "a2" || a[0].Points != 3 || a[0].Group != "A" {
		t.Errorf("group A leader: want Arsenal with 3 points, got %+v", a[0])
	}
	if a[1].GoalsFor != 0 {
		t.Errorf("ungrouped match leaked into group A: %+v", a[1])
	}

	b := grouped["B"]
	if len(b) != 2 {
		t.Fatalf("group B: want 2 rows, got %d", len(b))
	}
	if b[0].TeamID != "b2" || b[0].Points != 4 || b[0].Played != 2 {
		t.Errorf("group B leader: want Boca 4 points 2 played, got %+v", b[0])
	}
	for _, r := range b {
		if r.Group != "B" {
			t.Errorf("row %s not stamped with group B: %q", r.TeamName, r.Group)
		}
	}
}

func TestComputeByGroupBlankLabelNotAGroup(t *testing.T) {
	matches := []models.Match{
		inGroup(finished("H", "A", 1, 0), "   "),
	}
	grouped := ComputeByGroup(twoTeams(), matches)
	if _, ok := grouped[DefaultGroup]; !ok || len(grouped) != 1 {
		t.Fatalf("blank labels should not activate group mode, got %v", GroupLabels(grouped))
	}
}
