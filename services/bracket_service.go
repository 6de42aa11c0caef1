package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/league-standings/brackets"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/utils"
)

type KnockoutInput struct {
	QualifiersPerGroup int        `json:"qualifiers_per_group"`
	Mode               string     `json:"mode"`
	Seed               *int64     `json:"seed,omitempty"`
	Persist            bool       `json:"persist"`
	Date               *time.Time `json:"date,omitempty"`
	CreatedBy          string     `json:"-"`
}

type KnockoutResult struct {
	Round   string          `json:"round"`
	Mode    string          `json:"mode"`
	Pairs   []brackets.Pair `json:"pairs"`
	Matches []*models.Match `json:"matches,omitempty"`
}

type BracketService interface {
	BuildKnockout(ctx context.Context, tournamentID string, input KnockoutInput) (*KnockoutResult, error)
}

type bracketService struct {
	standingService StandingService
	matchRepo       repositories.MatchRepository
	notifier        Notifier
	logger          *slog.Logger
	now             func() time.Time
}

func NewBracketService(
	standingService StandingService,
	matchRepo repositories.MatchRepository,
	notifier Notifier,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		standingService: standingService,
		matchRepo:       matchRepo,
		notifier:        notifierOrNoop(notifier),
		logger:          logger,
		now:             time.Now,
	}
}

// BuildKnockout takes the top qualifiers of every group table and pairs them
// for the first knockout round. With Persist the pairs become scheduled matches.
func (s *bracketService) BuildKnockout(ctx context.Context, tournamentID string, input KnockoutInput) (*KnockoutResult, error) {
	if input.QualifiersPerGroup < 1 {
		return nil, fmt.Errorf("%w: qualifiers_per_group must be at least 1", ErrValidationFailed)
	}
	mode, err := brackets.ParsePairingMode(input.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	groups, err := s.standingService.GetGroupTables(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	qualified := brackets.TopNEachGroup(groups, input.QualifiersPerGroup)
	total := 0
	for _, rows := range qualified {
		total += len(rows)
	}
	if total < 2 {
		return nil, ErrNotEnoughQualifiers
	}

	seed := s.now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}
	pairs := brackets.NewPairer(seed).CrossPairsFromGroups(qualified, mode)
	if len(pairs) == 0 {
		return nil, ErrNotEnoughQualifiers
	}

	result := &KnockoutResult{
		Round: brackets.KnockoutRoundLabel(len(pairs)),
		Mode:  string(mode),
		Pairs: pairs,
	}

	if !input.Persist {
		return result, nil
	}

	date := s.now().Add(24 * time.Hour)
	if input.Date != nil {
		date = *input.Date
	}
	phase := phaseForRound(result.Round)

	matches := make([]*models.Match, 0, len(pairs))
	for _, p := range pairs {
		home, away := p[0], p[1]
		matches = append(matches, &models.Match{
			ID:           utils.NewMatchID(home.TeamID, away.TeamID, date),
			TournamentID: tournamentID,
			Round:        result.Round,
			Phase:        phase,
			Date:         date,
			HomeTeamID:   models.Ref{ID: home.TeamID, Name: home.TeamName},
			AwayTeamID:   models.Ref{ID: away.TeamID, Name: away.TeamName},
			Status:       models.MatchStatusScheduled,
			CreatedBy:    input.CreatedBy,
		})
	}

	if err := s.matchRepo.CreateBatch(ctx, matches); err != nil {
		return nil, fmt.Errorf("failed to persist knockout matches: %w", handleRepositoryError(err))
	}
	result.Matches = matches

	s.logger.InfoContext(ctx, "knockout round created",
		slog.String("tournament_id", tournamentID),
		slog.String("round", result.Round),
		slog.Int("matches", len(matches)))
	s.notifier.Notify(tournamentID, brackets.MessageBracketUpdated, result)
	return result, nil
}

func phaseForRound(round string) models.MatchPhase {
	switch round {
	case "Final":
		return models.PhaseFinal
	case "Semifinal":
		return models.PhaseSemi
	}
	return models.PhaseKnockout
}
