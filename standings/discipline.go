package standings

import "github.com/Dosada05/league-standings/models"

type cardCount struct {
	yellow int
	red    int
}

// ApplyDiscipline recounts yellow and red cards per team from events and
// returns a copy of the table with those counts written in. Rows with no
// card events keep the values they had. Cards never change points or order.
func ApplyDiscipline(rows []models.StandingRow, events []models.MatchEvent) []models.StandingRow {
	cards := make(map[string]*cardCount)
	for _, ev := range events {
		if ev.Type != models.EventYellow && ev.Type != models.EventRed {
			continue
		}
		teamID := refID(ev.TeamID)
		c, ok := cards[teamID]
		if !ok {
			c = &cardCount{}
			cards[teamID] = c
		}
		if ev.Type == models.EventYellow {
			c.yellow++
		} else {
			c.red++
		}
	}

	out := make([]models.StandingRow, len(rows))
	copy(out, rows)
	for i := range out {
		if c, ok := cards[out[i].TeamID]; ok {
			out[i].Yellow = c.yellow
			out[i].Red = c.red
		}
	}
	return out
}
