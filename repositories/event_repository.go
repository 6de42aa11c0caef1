package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/league-standings/models"
	"github.com/lib/pq"
)

type EventRepository interface {
	ListApprovedByTournament(ctx context.Context, tournamentID string) ([]models.MatchEvent, error)
}

type postgresEventRepository struct {
	db *sql.DB
}

func NewPostgresEventRepository(db *sql.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) ListApprovedByTournament(ctx context.Context, tournamentID string) ([]models.MatchEvent, error) {
	query := `
		SELECT id, match_id, tournament_id, team_id, team_name, player_id, player_name, type, minute, status, created_at
		FROM match_events
		WHERE tournament_id = $1 AND status = ANY($2)
		ORDER BY created_at ASC, id ASC`

	approved := make([]string, len(models.ApprovedEventStatuses))
	for i, s := range models.ApprovedEventStatuses {
		approved[i] = string(s)
	}

	rows, err := r.db.QueryContext(ctx, query, tournamentID, pq.Array(approved))
	if err != nil {
		return nil, fmt.Errorf("failed to query events for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	events := make([]models.MatchEvent, 0)
	for rows.Next() {
		var (
			ev        models.MatchEvent
			playerID  sql.NullString
			eventType string
			minute    sql.NullInt64
		)
		if err := rows.Scan(
			&ev.ID, &ev.MatchID, &ev.TournamentID, &ev.TeamID.ID, &ev.TeamID.Name,
			&playerID, &ev.PlayerName, &eventType, &minute, &ev.Status, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if id := nullString(playerID); id != "" {
			ev.PlayerID = &models.Ref{ID: id, Name: ev.PlayerName}
		}
		if minute.Valid {
			m := int(minute.Int64)
			ev.Minute = &m
		}
		ev.Type = models.NormalizeEventType(eventType)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during event rows iteration: %w", err)
	}
	return events, nil
}
