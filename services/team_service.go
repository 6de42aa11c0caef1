package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type TeamService interface {
	List(ctx context.Context, tournamentID string) ([]models.TournamentTeam, error)
	Search(ctx context.Context, tournamentID, query string) ([]models.TournamentTeam, error)
}

type teamService struct {
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, tournamentRepo repositories.TournamentRepository) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *teamService) List(ctx context.Context, tournamentID string) ([]models.TournamentTeam, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err)
	}
	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// Search ranks teams whose name or short name fuzzily contains query, closest
// match first. An empty query lists every team.
func (s *teamService) Search(ctx context.Context, tournamentID, query string) ([]models.TournamentTeam, error) {
	teams, err := s.List(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return teams, nil
	}

	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
		if t.ShortName != nil && *t.ShortName != "" {
			names[i] += " " + *t.ShortName
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	found := make([]models.TournamentTeam, 0, len(ranks))
	for _, r := range ranks {
		found = append(found, teams[r.OriginalIndex])
	}
	return found, nil
}
