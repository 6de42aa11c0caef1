package standings

import (
	"fmt"
	"testing"

	"github.com/Dosada05/league-standings/models"
)

func scored(player, name, match string, typ models.EventType) models.MatchEvent {
	ev := models.MatchEvent{MatchID: match, TeamID: models.NewRef("T"), Type: typ, PlayerName: name}
	if player != "" {
		ev.PlayerID = &models.Ref{ID: player}
	}
	return ev
}

func TestTopScorersExcludesOwnGoals(t *testing.T) {
	events := []models.MatchEvent{
		scored("p1", "Ana", "m1", models.EventGoal),
		scored("p1", "Ana", "m1", models.EventPenaltyScored),
		scored("p2", "Bea", "m1", models.EventOwnGoal),
	}
	got := TopScorers(events, 10)
	if len(got) != 1 {
		t.Fatalf("want 1 scorer, got %d: %+v", len(got), got)
	}
	if got[0].PlayerID != "p1" || got[0].Goals != 2 {
		t.Errorf("want p1 with 2 goals, got %+v", got[0])
	}
}

func TestTopScorersOrderingAndLimit(t *testing.T) {
	events := []models.MatchEvent{
		scored("p3", "Carla", "m1", models.EventGoal),
		scored("p2", "Bea", "m1", models.EventGoal),
		scored("p1", "Ana", "m2", models.EventGoal),
		scored("p1", "Ana", "m2", models.EventGoal),
		scored("", "Nobody", "m2", models.EventGoal),
		scored("p4", "Dora", "m2", models.EventPenaltyMissed),
		scored("p4", "Dora", "m2", models.EventAssist),
	}

	got := TopScorers(events, 2)
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].PlayerName != "Ana" || got[1].PlayerName != "Bea" {
		t.Errorf("want Ana then Bea, got %s then %s", got[0].PlayerName, got[1].PlayerName)
	}
}

func TestTopScorersDefaultLimit(t *testing.T) {
	events := make([]models.MatchEvent, 0, 15)
	for i := 0; i < 15; i++ {
		events = append(events, scored(fmt.Sprintf("p%02d", i), fmt.Sprintf("Player %02d", i), "m", models.EventGoal))
	}
	if got := TopScorers(events, 0); len(got) != DefaultScorerLimit {
		t.Errorf("want %d rows, got %d", DefaultScorerLimit, len(got))
	}
}

func TestTopScorersNameFromRef(t *testing.T) {
	ev := models.MatchEvent{
		TeamID:   models.Ref{ID: "T", Name: "Team"},
		PlayerID: &models.Ref{ID: "p9", Name: "Iker"},
		Type:     models.NormalizeEventType("gol"),
	}
	got := TopScorers([]models.MatchEvent{ev}, 5)
	if len(got) != 1 || got[0].PlayerName != "Iker" || got[0].TeamID != "T" {
		t.Errorf("want Iker of team T, got %+v", got)
	}
}

func TestPlayerStatsFromEvents(t *testing.T) {
	events := []models.MatchEvent{
		scored("p1", "Ana", "m1", models.EventGoal),
		scored("p1", "Ana", "m2", models.EventPenaltyScored),
		scored("p1", "Ana", "m2", models.EventYellow),
		scored("p1", "Ana", "m2", models.EventOwnGoal),
		scored("p2", "Bea", "m1", models.EventAssist),
		scored("p2", "Bea", "m3", models.EventRed),
		scored("", "Ghost", "m3", models.EventGoal),
	}
	stats := PlayerStatsFromEvents(events)
	if len(stats) != 2 {
		t.Fatalf("want 2 players, got %d", len(stats))
	}

	ana := stats[0]
	if ana.PlayerID != "p1" || ana.Goals != 2 || ana.Yellow != 1 || ana.Matches != 2 {
		t.Errorf("Ana: want 2 goals 1 yellow 2 matches, got %+v", ana)
	}
	bea := stats[1]
	if bea.Assists != 1 || bea.Red != 1 || bea.Matches != 2 || bea.Goals != 0 {
		t.Errorf("Bea: want 1 assist 1 red 2 matches, got %+v", bea)
	}
}
