package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/league-standings/brackets"
	"github.com/Dosada05/league-standings/models"
)

func newTestBracketService(f *fixture, n *fakeNotifier) *bracketService {
	standingSvc := newTestStandingService(f, nil, time.Minute)
	svc := NewBracketService(standingSvc, f.matches, n, discardLogger()).(*bracketService)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestBuildKnockoutSeeded(t *testing.T) {
	f := newFixture()
	n := &fakeNotifier{}
	svc := newTestBracketService(f, n)

	res, err := svc.BuildKnockout(context.Background(), "t1", KnockoutInput{QualifiersPerGroup: 2, Mode: "seeded"})
	if err != nil {
		t.Fatalf("BuildKnockout: %v", err)
	}
	if res.Round != "Semifinal" {
		t.Errorf("round: want Semifinal, got %s", res.Round)
	}
	want := [][2]string{{"Lions", "Wolves"}, {"Bears", "Tigers"}}
	if len(res.Pairs) != len(want) {
		t.Fatalf("pairs: want %d, got %d", len(want), len(res.Pairs))
	}
	for i, w := range want {
		if res.Pairs[i][0].TeamName != w[0] || res.Pairs[i][1].TeamName != w[1] {
			t.Errorf("pair %d: want %s-%s, got %s-%s", i, w[0], w[1], res.Pairs[i][0].TeamName, res.Pairs[i][1].TeamName)
		}
	}
	if len(f.matches.created) != 0 || len(n.sent) != 0 {
		t.Errorf("preview must not persist or notify")
	}
}

func TestBuildKnockoutPersist(t *testing.T) {
	f := newFixture()
	n := &fakeNotifier{}
	svc := newTestBracketService(f, n)
	date := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	res, err := svc.BuildKnockout(context.Background(), "t1", KnockoutInput{
		QualifiersPerGroup: 2,
		Persist:            true,
		Date:               &date,
		CreatedBy:          "u1",
	})
	if err != nil {
		t.Fatalf("BuildKnockout: %v", err)
	}
	if len(f.matches.created) != 2 || len(res.Matches) != 2 {
		t.Fatalf("created matches: want 2, got %d", len(f.matches.created))
	}
	m := f.matches.created[0]
	if m.Phase != models.PhaseSemi || m.Status != models.MatchStatusScheduled || !m.Date.Equal(date) {
		t.Errorf("unexpected match: %+v", m)
	}
	if m.HomeTeamID.ID != "a1" || m.AwayTeamID.ID != "b2" {
		t.Errorf("first match: want a1-b2, got %s-%s", m.HomeTeamID.ID, m.AwayTeamID.ID)
	}
	if len(n.sent) != 1 || n.sent[0].messageType != brackets.MessageBracketUpdated {
		t.Errorf("want one BRACKET_UPDATED, got %+v", n.sent)
	}
}

func TestBuildKnockoutRandomIsReproducible(t *testing.T) {
	seed := int64(42)
	input := KnockoutInput{QualifiersPerGroup: 2, Mode: "random", Seed: &seed}

	first, err := newTestBracketService(newFixture(), &fakeNotifier{}).BuildKnockout(context.Background(), "t1", input)
	if err != nil {
		t.Fatalf("BuildKnockout: %v", err)
	}
	second, err := newTestBracketService(newFixture(), &fakeNotifier{}).BuildKnockout(context.Background(), "t1", input)
	if err != nil {
		t.Fatalf("BuildKnockout: %v", err)
	}
	for i := range first.Pairs {
		if first.Pairs[i][0].TeamID != second.Pairs[i][0].TeamID || first.Pairs[i][1].TeamID != second.Pairs[i][1].TeamID {
			t.Errorf("pair %d differs between runs with the same seed", i)
		}
	}
}

func TestBuildKnockoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		tid   string
		input KnockoutInput
		want  error
	}{
		{"zero qualifiers", "t1", KnockoutInput{QualifiersPerGroup: 0}, ErrValidationFailed},
		{"bad mode", "t1", KnockoutInput{QualifiersPerGroup: 1, Mode: "swiss"}, ErrValidationFailed},
		{"one per group yields no cross pairs", "t1", KnockoutInput{QualifiersPerGroup: 1}, ErrNotEnoughQualifiers},
		{"unknown tournament", "nope", KnockoutInput{QualifiersPerGroup: 2}, ErrTournamentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestBracketService(newFixture(), &fakeNotifier{})
			_, err := svc.BuildKnockout(context.Background(), tt.tid, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("want %v, got %v", tt.want, err)
			}
		})
	}
}
