package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/league-standings/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
	ErrMatchIDConflict        = errors.New("match id already exists")
)

// MatchFilter narrows ListByTournament. Empty fields do not filter.
type MatchFilter struct {
	Statuses []models.MatchStatus
	Phase    *models.MatchPhase
	Round    *string
}

type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID string, filter MatchFilter) ([]models.Match, error)
	ConfirmResult(ctx context.Context, id string, score models.Score, by models.ConfirmedBy) error
	CreateBatch(ctx context.Context, matches []*models.Match) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, tournament_id, round, phase, group_label, match_date, field,
	home_team_id, home_team_name, away_team_id, away_team_name,
	referee, status, home_score, away_score, confirmed_by, notes, created_by, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var (
		m           models.Match
		confirmedBy sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.TournamentID, &m.Round, &m.Phase, &m.Group, &m.Date, &m.Field,
		&m.HomeTeamID.ID, &m.HomeTeamID.Name, &m.AwayTeamID.ID, &m.AwayTeamID.Name,
		&m.Referee, &m.Status, &m.Score.Home, &m.Score.Away, &confirmedBy, &m.Notes, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if confirmedBy.Valid {
		by := models.ConfirmedBy(confirmedBy.String)
		m.ConfirmedBy = &by
	}
	return &m, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID string, filter MatchFilter) ([]models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	placeholderIndex := 2

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = strings.ToLower(string(s))
		}
		queryBuilder.WriteString(" AND lower(status) = ANY($")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		queryBuilder.WriteString(")")
		args = append(args, pq.Array(statuses))
		placeholderIndex++
	}
	if filter.Phase != nil {
		queryBuilder.WriteString(" AND phase = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Phase)
		placeholderIndex++
	}
	if filter.Round != nil {
		queryBuilder.WriteString(" AND round = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Round)
	}

	queryBuilder.WriteString(" ORDER BY match_date ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %s: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) ConfirmResult(ctx context.Context, id string, score models.Score, by models.ConfirmedBy) error {
	query := `
		UPDATE matches
		SET status = $1, home_score = $2, away_score = $3, confirmed_by = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, models.MatchStatusFinished, score.Home, score.Away, by, id)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

// CreateBatch inserts all matches in one transaction; either every match is
// stored or none is.
func (r *postgresMatchRepository) CreateBatch(ctx context.Context, matches []*models.Match) error {
	if len(matches) == 0 {
		return nil
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO matches
				(id, tournament_id, round, phase, group_label, match_date, field,
				 home_team_id, home_team_name, away_team_id, away_team_name,
				 referee, status, home_score, away_score, notes, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING created_at`)
		if err != nil {
			return fmt.Errorf("CreateBatch failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, m := range matches {
			err := stmt.QueryRowContext(ctx,
				m.ID, m.TournamentID, m.Round, m.Phase, m.Group, m.Date, m.Field,
				m.HomeTeamID.ID, m.HomeTeamID.Name, m.AwayTeamID.ID, m.AwayTeamID.Name,
				m.Referee, m.Status, m.Score.Home, m.Score.Away, m.Notes, m.CreatedBy,
			).Scan(&m.CreatedAt)
			if err != nil {
				return fmt.Errorf("CreateBatch failed for match %s: %w", m.ID, r.handleMatchError(err))
			}
		}
		return nil
	})
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "matches_tournament_id_fkey" {
				return ErrMatchTournamentInvalid
			}
		case "23505": // unique_violation
			return ErrMatchIDConflict
		}
	}
	return err
}
