package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/league-standings/models"
)

// StandingSnapshotRepository stores the last published table of a tournament.
type StandingSnapshotRepository interface {
	Replace(ctx context.Context, tournamentID string, rows []models.StandingRow, takenAt time.Time) error
	ListByTournament(ctx context.Context, tournamentID string) ([]models.StandingSnapshot, error)
}

type postgresStandingSnapshotRepository struct {
	db *sql.DB
}

func NewPostgresStandingSnapshotRepository(db *sql.DB) StandingSnapshotRepository {
	return &postgresStandingSnapshotRepository{db: db}
}

// Replace drops the previous snapshot and writes rows ranked in slice order.
func (r *postgresStandingSnapshotRepository) Replace(ctx context.Context, tournamentID string, rows []models.StandingRow, takenAt time.Time) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM standing_snapshots WHERE tournament_id = $1`, tournamentID); err != nil {
			return fmt.Errorf("failed to clear snapshot for tournament %s: %w", tournamentID, err)
		}
		if len(rows) == 0 {
			return nil
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO standing_snapshots
				(tournament_id, rank, team_id, team_name, group_label, played, won, draw, lost,
				 goals_for, goals_against, goal_diff, points, yellow, red, taken_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`)
		if err != nil {
			return fmt.Errorf("failed to prepare snapshot insert: %w", err)
		}
		defer stmt.Close()

		for i, row := range rows {
			_, err := stmt.ExecContext(ctx,
				tournamentID, i+1, row.TeamID, row.TeamName, row.Group, row.Played, row.Won, row.Draw, row.Lost,
				row.GoalsFor, row.GoalsAgainst, row.GoalDiff, row.Points, row.Yellow, row.Red, takenAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert snapshot row for team %s: %w", row.TeamID, err)
			}
		}
		return nil
	})
}

func (r *postgresStandingSnapshotRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.StandingSnapshot, error) {
	query := `
		SELECT id, tournament_id, rank, team_id, team_name, group_label, played, won, draw, lost,
		       goals_for, goals_against, goal_diff, points, yellow, red, taken_at
		FROM standing_snapshots
		WHERE tournament_id = $1
		ORDER BY rank ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	snapshots := make([]models.StandingSnapshot, 0)
	for rows.Next() {
		var s models.StandingSnapshot
		if err := rows.Scan(
			&s.ID, &s.TournamentID, &s.Rank, &s.Row.TeamID, &s.Row.TeamName, &s.Row.Group,
			&s.Row.Played, &s.Row.Won, &s.Row.Draw, &s.Row.Lost,
			&s.Row.GoalsFor, &s.Row.GoalsAgainst, &s.Row.GoalDiff, &s.Row.Points,
			&s.Row.Yellow, &s.Row.Red, &s.TakenAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during snapshot rows iteration: %w", err)
	}
	return snapshots, nil
}
