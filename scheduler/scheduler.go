package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Dosada05/league-standings/models"
	"github.com/go-co-op/gocron/v2"
)

// Refresher reloads cached standings for one tournament.
type Refresher interface {
	Refresh(ctx context.Context, tournamentID string) error
	CachedTournamentIDs() []string
}

type TournamentLister interface {
	ListByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, error)
}

type Scheduler struct {
	s           gocron.Scheduler
	refresher   Refresher
	tournaments TournamentLister
	interval    time.Duration
	timeout     time.Duration
	logger      *slog.Logger
}

func NewScheduler(refresher Refresher, tournaments TournamentLister, interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		refresher:   refresher,
		tournaments: tournaments,
		interval:    interval,
		timeout:     interval,
		logger:      logger,
	}, nil
}

// Start registers the refresh job and runs it once immediately.
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.refreshJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings refresh job: %w", err)
	}

	s.s.Start()
	s.logger.Info("standings refresh scheduler started", slog.Duration("interval", s.interval))
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refreshJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	refreshed, err := s.RefreshAll(ctx)
	if err != nil {
		s.logger.Error("standings refresh failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("standings refreshed", slog.Int("tournaments", refreshed))
}

// RefreshAll reloads every active tournament plus anything already cached.
// A failing tournament is logged and skipped.
func (s *Scheduler) RefreshAll(ctx context.Context) (int, error) {
	active, err := s.tournaments.ListByStatus(ctx, models.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to list active tournaments: %w", err)
	}

	ids := make(map[string]struct{}, len(active))
	for _, t := range active {
		ids[t.ID] = struct{}{}
	}
	for _, id := range s.refresher.CachedTournamentIDs() {
		ids[id] = struct{}{}
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	refreshed := 0
	for _, id := range ordered {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if err := s.refresher.Refresh(ctx, id); err != nil {
			s.logger.Warn("failed to refresh standings",
				slog.String("tournament_id", id), slog.Any("error", err))
			continue
		}
		refreshed++
	}
	return refreshed, nil
}
