package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Dosada05/league-standings/brackets"
	"github.com/Dosada05/league-standings/models"
	"github.com/Dosada05/league-standings/standings"
	"github.com/spf13/cobra"
)

type inputFiles struct {
	teams   string
	matches string
	events  string
}

func (f *inputFiles) bindTable(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.teams, "teams", "", "JSON file with [{id, name}] teams")
	cmd.Flags().StringVar(&f.matches, "matches", "", "JSON file with matches")
	_ = cmd.MarkFlagRequired("teams")
	_ = cmd.MarkFlagRequired("matches")
}

func tableCmd() *cobra.Command {
	var (
		files   inputFiles
		grouped bool
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the league table, or one table per group",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, matches, err := loadTeamsAndMatches(files)
			if err != nil {
				return err
			}
			var events []models.MatchEvent
			if files.events != "" {
				if err := readJSONFile(files.events, &events); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if !grouped {
				rows := standings.Compute(teams, matches)
				if events != nil {
					rows = standings.ApplyDiscipline(rows, events)
				}
				if asJSON {
					return writeJSON(out, rows)
				}
				return writeTable(out, rows, events != nil)
			}

			groups := standings.ComputeByGroup(teams, matches)
			if events != nil {
				for label, rows := range groups {
					groups[label] = standings.ApplyDiscipline(rows, events)
				}
			}
			if asJSON {
				return writeJSON(out, groups)
			}
			for i, label := range standings.GroupLabels(groups) {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Group %s\n", label)
				if err := writeTable(out, groups[label], events != nil); err != nil {
					return err
				}
			}
			return nil
		},
	}
	files.bindTable(cmd)
	cmd.Flags().StringVar(&files.events, "events", "", "JSON file with approved match events (adds card columns)")
	cmd.Flags().BoolVar(&grouped, "groups", false, "Partition the table by match group")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a text table")
	return cmd
}

func pairsCmd() *cobra.Command {
	var (
		files inputFiles
		top   int
		mode  string
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Pair the top teams of every group for the first knockout round",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairingMode, err := brackets.ParsePairingMode(mode)
			if err != nil {
				return err
			}
			if top < 1 {
				return fmt.Errorf("--top must be at least 1, got %d", top)
			}
			teams, matches, err := loadTeamsAndMatches(files)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			qualified := brackets.TopNEachGroup(standings.ComputeByGroup(teams, matches), top)
			pairs := brackets.NewPairer(seed).CrossPairsFromGroups(qualified, pairingMode)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, brackets.KnockoutRoundLabel(len(pairs)))
			for i, p := range pairs {
				fmt.Fprintf(out, "%d. %s vs %s\n", i+1, p[0].TeamName, p[1].TeamName)
			}
			if len(pairs) == 0 {
				logger.Warn("no pairs produced", "groups", len(qualified), "top", top)
			}
			return nil
		},
	}
	files.bindTable(cmd)
	cmd.Flags().IntVar(&top, "top", 2, "Qualifiers per group")
	cmd.Flags().StringVar(&mode, "mode", string(brackets.PairingSeeded), "Pairing mode: seeded or random")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible random pairing")
	return cmd
}

func scorersCmd() *cobra.Command {
	var (
		eventsFile string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "scorers",
		Short: "Print the top scorers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []models.MatchEvent
			if err := readJSONFile(eventsFile, &events); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tPlayer\tTeam\tGoals")
			for i, s := range standings.TopScorers(events, limit) {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, s.PlayerName, s.TeamID, s.Goals)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&eventsFile, "events", "", "JSON file with approved match events")
	cmd.Flags().IntVar(&limit, "limit", standings.DefaultScorerLimit, "Maximum rows")
	_ = cmd.MarkFlagRequired("events")
	return cmd
}

func loadTeamsAndMatches(files inputFiles) ([]models.Team, []models.Match, error) {
	var teams []models.Team
	if err := readJSONFile(files.teams, &teams); err != nil {
		return nil, nil, err
	}
	var matches []models.Match
	if err := readJSONFile(files.matches, &matches); err != nil {
		return nil, nil, err
	}
	return teams, matches, nil
}

func readJSONFile(path string, dst interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, rows []models.StandingRow, withCards bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts"
	if withCards {
		header += "\tY\tR"
	}
	fmt.Fprintln(tw, header)
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d", i+1, r.TeamName, r.Played, r.Won, r.Draw, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDiff, r.Points)
		if withCards {
			fmt.Fprintf(tw, "\t%d\t%d", r.Yellow, r.Red)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
