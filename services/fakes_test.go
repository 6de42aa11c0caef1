package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
	"github.com/Dosada05/league-standings/storage"
)

type fakeTournamentRepo struct {
	tournaments map[string]models.Tournament
}

func (r *fakeTournamentRepo) GetByID(_ context.Context, id string) (*models.Tournament, error) {
	t, ok := r.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	return &t, nil
}

func (r *fakeTournamentRepo) ListByStatus(_ context.Context, status models.TournamentStatus) ([]models.Tournament, error) {
	out := make([]models.Tournament, 0)
	for _, t := range r.tournaments {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams map[string][]models.TournamentTeam
}

func (r *fakeTeamRepo) ListByTournament(_ context.Context, tournamentID string) ([]models.TournamentTeam, error) {
	return r.teams[tournamentID], nil
}

type fakeMatchRepo struct {
	mu        sync.Mutex
	matches   map[string][]models.Match
	listCalls int
	created   []*models.Match
	createErr error
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ms := range r.matches {
		for _, m := range ms {
			if m.ID == id {
				m := m
				return &m, nil
			}
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID string, _ repositories.MatchFilter) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	return append([]models.Match(nil), r.matches[tournamentID]...), nil
}

func (r *fakeMatchRepo) ConfirmResult(_ context.Context, id string, score models.Score, by models.ConfirmedBy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for tid, ms := range r.matches {
		for i := range ms {
			if ms[i].ID == id {
				b := by
				r.matches[tid][i].Score = score
				r.matches[tid][i].Status = models.MatchStatusFinished
				r.matches[tid][i].ConfirmedBy = &b
				return nil
			}
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) CreateBatch(_ context.Context, matches []*models.Match) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, matches...)
	return nil
}

type fakeEventRepo struct {
	events map[string][]models.MatchEvent
}

func (r *fakeEventRepo) ListApprovedByTournament(_ context.Context, tournamentID string) ([]models.MatchEvent, error) {
	return r.events[tournamentID], nil
}

type fakeSnapshotRepo struct {
	stored map[string][]models.StandingRow
}

func (r *fakeSnapshotRepo) Replace(_ context.Context, tournamentID string, rows []models.StandingRow, _ time.Time) error {
	if r.stored == nil {
		r.stored = make(map[string][]models.StandingRow)
	}
	r.stored[tournamentID] = rows
	return nil
}

func (r *fakeSnapshotRepo) ListByTournament(_ context.Context, tournamentID string) ([]models.StandingSnapshot, error) {
	out := make([]models.StandingSnapshot, 0)
	for i, row := range r.stored[tournamentID] {
		out = append(out, models.StandingSnapshot{TournamentID: tournamentID, Rank: i + 1, Row: row})
	}
	return out, nil
}

type fakeUploader struct {
	keys   []string
	bodies [][]byte
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.keys = append(u.keys, key)
	u.bodies = append(u.bodies, body)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *fakeUploader) Delete(context.Context, string) error { return nil }

func (u *fakeUploader) GetPublicURL(key string) string {
	return storage.PublicURL("https://cdn.example.com", key)
}

type sentMessage struct {
	tournamentID string
	messageType  string
	payload      interface{}
}

type fakeNotifier struct {
	sent []sentMessage
}

func (n *fakeNotifier) Notify(tournamentID, messageType string, payload interface{}) {
	n.sent = append(n.sent, sentMessage{tournamentID, messageType, payload})
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func finished(id, group, home, away string, hg, ag int) models.Match {
	return models.Match{
		ID:           id,
		TournamentID: "t1",
		Group:        group,
		HomeTeamID:   models.NewRef(home),
		AwayTeamID:   models.NewRef(away),
		Status:       models.MatchStatusFinished,
		Score:        models.Score{Home: hg, Away: ag},
	}
}

func tournamentTeam(id, name string) models.TournamentTeam {
	return models.TournamentTeam{Team: models.Team{ID: id, Name: name}, TournamentID: "t1"}
}

type fixture struct {
	tournaments *fakeTournamentRepo
	teams       *fakeTeamRepo
	matches     *fakeMatchRepo
	events      *fakeEventRepo
	snapshots   *fakeSnapshotRepo
}

// newFixture seeds tournament t1 with two groups of two teams each.
func newFixture() *fixture {
	return &fixture{
		tournaments: &fakeTournamentRepo{tournaments: map[string]models.Tournament{
			"t1": {ID: "t1", Name: "Copa", Status: models.StatusActive},
		}},
		teams: &fakeTeamRepo{teams: map[string][]models.TournamentTeam{
			"t1": {
				tournamentTeam("a1", "Lions"),
				tournamentTeam("a2", "Tigers"),
				tournamentTeam("b1", "Bears"),
				tournamentTeam("b2", "Wolves"),
			},
		}},
		matches: &fakeMatchRepo{matches: map[string][]models.Match{
			"t1": {
				finished("m1", "A", "a1", "a2", 2, 0),
				finished("m2", "B", "b1", "b2", 1, 1),
				{ID: "m3", TournamentID: "t1", Group: "B", HomeTeamID: models.NewRef("b2"), AwayTeamID: models.NewRef("b1"), Status: models.MatchStatusScheduled},
			},
		}},
		events: &fakeEventRepo{events: map[string][]models.MatchEvent{
			"t1": {
				{MatchID: "m1", TeamID: models.NewRef("a1"), PlayerID: &models.Ref{ID: "p1", Name: "Ana"}, Type: models.EventGoal},
				{MatchID: "m1", TeamID: models.NewRef("a1"), PlayerID: &models.Ref{ID: "p1", Name: "Ana"}, Type: models.EventPenaltyScored},
				{MatchID: "m1", TeamID: models.NewRef("a2"), PlayerID: &models.Ref{ID: "p2", Name: "Bo"}, Type: models.EventYellow},
				{MatchID: "m2", TeamID: models.NewRef("b1"), PlayerID: &models.Ref{ID: "p3", Name: "Cy"}, Type: models.EventGoal},
			},
		}},
		snapshots: &fakeSnapshotRepo{},
	}
}
