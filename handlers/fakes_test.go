package handlers

import (
	"context"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/services"
)

type fakeStandingService struct {
	table        []models.StandingRow
	groups       map[string][]models.StandingRow
	scorers      []models.ScorerRow
	err          error
	gotLimit     int
	gotDiscipl   bool
	snapshotResp *services.SnapshotResult
}

func (s *fakeStandingService) GetTable(_ context.Context, _ string, withDiscipline bool) ([]models.StandingRow, error) {
	s.gotDiscipl = withDiscipline
	return s.table, s.err
}

func (s *fakeStandingService) GetGroupTables(context.Context, string) (map[string][]models.StandingRow, error) {
	return s.groups, s.err
}

func (s *fakeStandingService) TopScorers(_ context.Context, _ string, limit int) ([]models.ScorerRow, error) {
	s.gotLimit = limit
	return s.scorers, s.err
}

func (s *fakeStandingService) PlayerStats(context.Context, string) ([]models.PlayerStats, error) {
	return []models.PlayerStats{}, s.err
}

func (s *fakeStandingService) PublishSnapshot(context.Context, string) (*services.SnapshotResult, error) {
	if s.snapshotResp == nil {
		return nil, services.ErrSnapshotStorageDisabled
	}
	return s.snapshotResp, nil
}

func (s *fakeStandingService) Refresh(context.Context, string) error { return s.err }
func (s *fakeStandingService) Invalidate(string)                     {}
func (s *fakeStandingService) CachedTournamentIDs() []string         { return nil }

type fakeMatchService struct {
	gotFilter repositories.MatchFilter
	gotScore  models.Score
	gotRole   models.UserRole
	err       error
}

func (s *fakeMatchService) List(_ context.Context, _ string, filter repositories.MatchFilter) ([]models.Match, error) {
	s.gotFilter = filter
	return []models.Match{}, s.err
}

func (s *fakeMatchService) ConfirmResult(_ context.Context, matchID string, score models.Score, role models.UserRole) (*models.Match, error) {
	s.gotScore = score
	s.gotRole = role
	if s.err != nil {
		return nil, s.err
	}
	return &models.Match{ID: matchID, Score: score, Status: models.MatchStatusFinished}, nil
}

type fakeBracketService struct {
	got services.KnockoutInput
	err error
}

func (s *fakeBracketService) BuildKnockout(_ context.Context, _ string, input services.KnockoutInput) (*services.KnockoutResult, error) {
	s.got = input
	if s.err != nil {
		return nil, s.err
	}
	return &services.KnockoutResult{Round: "Final", Mode: "seeded"}, nil
}

type fakeAuthService struct{}

func (fakeAuthService) Login(_ context.Context, in services.LoginInput) (string, *models.User, error) {
	if in.Email == "ref@league.org" && in.Password == "ok" {
		return "token-123", &models.User{ID: "u1", Role: models.RoleManager}, nil
	}
	return "", nil, services.ErrInvalidCredentials
}
