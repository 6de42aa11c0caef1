package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dosada05/league-standings/models"
)

const teamsJSON = `[
  {"id": "a1", "name": "Lions"},
  {"id": "a2", "name": "Tigers"},
  {"id": "b1", "name": "Bears"},
  {"id": "b2", "name": "Wolves"}
]`

const matchesJSON = `[
  {"id": "m1", "group": "A", "homeTeamId": "a1", "awayTeamId": {"id": "a2", "name": "Tigers"}, "status": "terminado", "score": {"home": 2, "away": 0}},
  {"id": "m2", "group": "B", "homeTeamId": "b1", "awayTeamId": "b2", "status": "finished", "score": {"home": 0, "away": 1}},
  {"id": "m3", "group": "B", "homeTeamId": "b2", "awayTeamId": "b1", "status": "scheduled"}
]`

const eventsJSON = `[
  {"matchId": "m1", "teamId": "a1", "playerId": {"id": "p1", "name": "Ana"}, "type": "gol"},
  {"matchId": "m1", "teamId": "a1", "playerId": {"id": "p1", "name": "Ana"}, "type": "goal"},
  {"matchId": "m2", "teamId": "b2", "playerId": "p4", "playerName": "Dee", "type": "goal"},
  {"matchId": "m2", "teamId": "b1", "playerId": "p3", "type": "amarilla"}
]`

func writeFiles(t *testing.T) (teams, matches, events string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return p
	}
	return write("teams.json", teamsJSON), write("matches.json", matchesJSON), write("events.json", eventsJSON)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTableJSON(t *testing.T) {
	teams, matches, events := writeFiles(t)

	out, err := run(t, "table", "--teams", teams, "--matches", matches, "--events", events, "--json")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	var rows []models.StandingRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(rows) != 4 {
		t.Fatalf("rows: want 4, got %d", len(rows))
	}
	if rows[0].TeamName != "Lions" || rows[1].TeamName != "Wolves" {
		t.Errorf("order: got %s, %s", rows[0].TeamName, rows[1].TeamName)
	}
	for _, r := range rows {
		if r.TeamID == "b1" && r.Yellow != 1 {
			t.Errorf("Bears yellow: want 1, got %d", r.Yellow)
		}
	}
}

func TestTableGroupsText(t *testing.T) {
	teams, matches, _ := writeFiles(t)

	out, err := run(t, "table", "--teams", teams, "--matches", matches, "--groups")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(out, "Group A") || !strings.Contains(out, "Group B") {
		t.Errorf("missing group headers:\n%s", out)
	}
	if strings.Index(out, "Group A") > strings.Index(out, "Group B") {
		t.Errorf("groups out of order:\n%s", out)
	}
}

func TestPairsSeeded(t *testing.T) {
	teams, matches, _ := writeFiles(t)

	out, err := run(t, "pairs", "--teams", teams, "--matches", matches, "--top", "2", "--mode", "seeded")
	if err != nil {
		t.Fatalf("pairs: %v", err)
	}
	want := "Semifinal\n1. Lions vs Bears\n2. Wolves vs Tigers\n"
	if out != want {
		t.Errorf("output:\nwant %q\ngot  %q", want, out)
	}
}

func TestPairsBadMode(t *testing.T) {
	teams, matches, _ := writeFiles(t)

	if _, err := run(t, "pairs", "--teams", teams, "--matches", matches, "--mode", "swiss"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestScorers(t *testing.T) {
	_, _, events := writeFiles(t)

	out, err := run(t, "scorers", "--events", events, "--limit", "1")
	if err != nil {
		t.Fatalf("scorers: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header plus one row, got:\n%s", out)
	}
	if !strings.Contains(lines[1], "Ana") || !strings.HasSuffix(strings.TrimSpace(lines[1]), "2") {
		t.Errorf("top scorer row: %q", lines[1])
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := run(t, "scorers", "--events", filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected error for missing events file")
	}
}
