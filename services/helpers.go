package services

import (
	"errors"

	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/repositories"
)

// Notifier pushes a typed message to everyone watching a tournament.
type Notifier interface {
	Notify(tournamentID, messageType string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string, interface{}) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

func handleRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchIDConflict):
		return ErrMatchConflict
	case errors.Is(err, repositories.ErrMatchTournamentInvalid):
		return ErrTournamentNotFound
	}
	return err
}

func teamsOf(tournamentTeams []models.TournamentTeam) []models.Team {
	teams := make([]models.Team, len(tournamentTeams))
	for i, t := range tournamentTeams {
		teams[i] = t.Team
	}
	return teams
}

func canConfirmResults(role models.UserRole) bool {
	return role == models.RoleAdmin || role == models.RoleManager
}
