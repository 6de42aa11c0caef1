package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/league-standings/brackets"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
)

// StandingInvalidator drops cached tables that a result change makes stale.
type StandingInvalidator interface {
	Invalidate(tournamentID string)
}

type MatchService interface {
	List(ctx context.Context, tournamentID string, filter repositories.MatchFilter) ([]models.Match, error)
	ConfirmResult(ctx context.Context, matchID string, score models.Score, role models.UserRole) (*models.Match, error)
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	invalidator    StandingInvalidator
	notifier       Notifier
	logger         *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	invalidator StandingInvalidator,
	notifier Notifier,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		invalidator:    invalidator,
		notifier:       notifierOrNoop(notifier),
		logger:         logger,
	}
}

func (s *matchService) List(ctx context.Context, tournamentID string, filter repositories.MatchFilter) ([]models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, handleRepositoryError(err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

// ConfirmResult records the final score, marks the match finished and
// remembers which role confirmed it.
func (s *matchService) ConfirmResult(ctx context.Context, matchID string, score models.Score, role models.UserRole) (*models.Match, error) {
	if !canConfirmResults(role) {
		return nil, ErrForbiddenOperation
	}
	if score.Home < 0 || score.Away < 0 {
		return nil, ErrInvalidScore
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, handleRepositoryError(err)
	}

	by := models.ConfirmedByManager
	if role == models.RoleAdmin {
		by = models.ConfirmedByAdmin
	}
	if err := s.matchRepo.ConfirmResult(ctx, matchID, score, by); err != nil {
		return nil, fmt.Errorf("failed to confirm result of match %s: %w", matchID, handleRepositoryError(err))
	}

	match.Score = score
	match.Status = models.MatchStatusFinished
	match.ConfirmedBy = &by

	if s.invalidator != nil {
		s.invalidator.Invalidate(match.TournamentID)
	}

	s.logger.InfoContext(ctx, "match result confirmed",
		slog.String("match_id", matchID),
		slog.String("tournament_id", match.TournamentID),
		slog.Int("home", score.Home),
		slog.Int("away", score.Away),
		slog.String("confirmed_by", string(by)))

	s.notifier.Notify(match.TournamentID, brackets.MessageMatchUpdated, match)
	s.notifier.Notify(match.TournamentID, brackets.MessageStandingsUpdated, map[string]string{
		"tournamentId": match.TournamentID,
		"matchId":      match.ID,
	})
	return match, nil
}
