package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/league-standings/models"
)

type TeamRepository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]models.TournamentTeam, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]models.TournamentTeam, error) {
	query := `
		SELECT id, tournament_id, name, short_name, logo_url, created_at
		FROM teams
		WHERE tournament_id = $1
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	teams := make([]models.TournamentTeam, 0)
	for rows.Next() {
		var t models.TournamentTeam
		if err := rows.Scan(&t.ID, &t.TournamentID, &t.Name, &t.ShortName, &t.LogoURL, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during team rows iteration: %w", err)
	}
	return teams, nil
}
