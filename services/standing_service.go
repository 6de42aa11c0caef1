package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/standings"
	"github.com/Dosada05/league-standings/storage"
	"golang.org/x/sync/errgroup"
)

type StandingService interface {
	GetTable(ctx context.Context, tournamentID string, withDiscipline bool) ([]models.StandingRow, error)
	GetGroupTables(ctx context.Context, tournamentID string) (map[string][]models.StandingRow, error)
	TopScorers(ctx context.Context, tournamentID string, limit int) ([]models.ScorerRow, error)
	PlayerStats(ctx context.Context, tournamentID string) ([]models.PlayerStats, error)
	PublishSnapshot(ctx context.Context, tournamentID string) (*SnapshotResult, error)
	Refresh(ctx context.Context, tournamentID string) error
	Invalidate(tournamentID string)
	CachedTournamentIDs() []string
}

type SnapshotResult struct {
	TournamentID string               `json:"tournamentId"`
	TakenAt      time.Time            `json:"takenAt"`
	URL          string               `json:"url"`
	Rows         []models.StandingRow `json:"rows"`
}

// tournamentData is everything the table, scorer and stats views derive from.
type tournamentData struct {
	teams    []models.Team
	matches  []models.Match
	events   []models.MatchEvent
	loadedAt time.Time
}

type standingService struct {
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	eventRepo      repositories.EventRepository
	snapshotRepo   repositories.StandingSnapshotRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
	ttl            time.Duration
	now            func() time.Time

	mu    sync.RWMutex
	cache map[string]*tournamentData
}

// NewStandingService wires the repositories the tables are built from. The
// uploader may be nil, in which case PublishSnapshot is unavailable.
func NewStandingService(
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	eventRepo repositories.EventRepository,
	snapshotRepo repositories.StandingSnapshotRepository,
	uploader storage.FileUploader,
	ttl time.Duration,
	logger *slog.Logger,
) StandingService {
	return &standingService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		eventRepo:      eventRepo,
		snapshotRepo:   snapshotRepo,
		uploader:       uploader,
		logger:         logger,
		ttl:            ttl,
		now:            time.Now,
		cache:          make(map[string]*tournamentData),
	}
}

func (s *standingService) GetTable(ctx context.Context, tournamentID string, withDiscipline bool) ([]models.StandingRow, error) {
	data, err := s.load(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	rows := standings.Compute(data.teams, data.matches)
	if withDiscipline {
		rows = standings.ApplyDiscipline(rows, data.events)
	}
	return rows, nil
}

func (s *standingService) GetGroupTables(ctx context.Context, tournamentID string) (map[string][]models.StandingRow, error) {
	data, err := s.load(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return standings.ComputeByGroup(data.teams, data.matches), nil
}

func (s *standingService) TopScorers(ctx context.Context, tournamentID string, limit int) ([]models.ScorerRow, error) {
	data, err := s.load(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return standings.TopScorers(data.events, limit), nil
}

func (s *standingService) PlayerStats(ctx context.Context, tournamentID string) ([]models.PlayerStats, error) {
	data, err := s.load(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return standings.PlayerStatsFromEvents(data.events), nil
}

// PublishSnapshot stores the current table (with cards) and uploads it as
// JSON to object storage.
func (s *standingService) PublishSnapshot(ctx context.Context, tournamentID string) (*SnapshotResult, error) {
	if s.uploader == nil {
		return nil, ErrSnapshotStorageDisabled
	}

	rows, err := s.GetTable(ctx, tournamentID, true)
	if err != nil {
		return nil, err
	}

	takenAt := s.now().UTC()
	if err := s.snapshotRepo.Replace(ctx, tournamentID, rows, takenAt); err != nil {
		return nil, fmt.Errorf("failed to store snapshot for tournament %s: %w", tournamentID, err)
	}

	result := &SnapshotResult{TournamentID: tournamentID, TakenAt: takenAt, Rows: rows}
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	uploaded, err := s.uploader.Upload(ctx, storage.SnapshotKey(tournamentID, takenAt), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot for tournament %s: %w", tournamentID, err)
	}
	result.URL = uploaded.Location

	s.logger.InfoContext(ctx, "standings snapshot published",
		slog.String("tournament_id", tournamentID),
		slog.Int("rows", len(rows)),
		slog.String("key", uploaded.Key))
	return result, nil
}

// Refresh reloads the tournament from the repositories regardless of the TTL.
func (s *standingService) Refresh(ctx context.Context, tournamentID string) error {
	_, err := s.fetch(ctx, tournamentID)
	return err
}

func (s *standingService) Invalidate(tournamentID string) {
	s.mu.Lock()
	delete(s.cache, tournamentID)
	s.mu.Unlock()
}

func (s *standingService) CachedTournamentIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.cache))
	for id := range s.cache {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

func (s *standingService) load(ctx context.Context, tournamentID string) (*tournamentData, error) {
	s.mu.RLock()
	data, ok := s.cache[tournamentID]
	s.mu.RUnlock()
	if ok && s.ttl > 0 && s.now().Sub(data.loadedAt) < s.ttl {
		return data, nil
	}
	return s.fetch(ctx, tournamentID)
}

func (s *standingService) fetch(ctx context.Context, tournamentID string) (*tournamentData, error) {
	var (
		teams   []models.TournamentTeam
		matches []models.Match
		events  []models.MatchEvent
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.tournamentRepo.GetByID(gCtx, tournamentID); err != nil {
			return handleRepositoryError(err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to fetch teams: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByTournament(gCtx, tournamentID, repositories.MatchFilter{})
		if err != nil {
			return fmt.Errorf("failed to fetch matches: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		events, err = s.eventRepo.ListApprovedByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to fetch events: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "failed to load tournament data",
			slog.String("tournament_id", tournamentID), slog.Any("error", err))
		return nil, err
	}

	data := &tournamentData{
		teams:    teamsOf(teams),
		matches:  matches,
		events:   events,
		loadedAt: s.now(),
	}

	if s.ttl > 0 {
		s.mu.Lock()
		s.cache[tournamentID] = data
		s.mu.Unlock()
	}
	return data, nil
}
