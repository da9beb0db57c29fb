package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/xmlsoccer-import/external/xmlsoccer"
)

func (c *cli) importLeaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-leagues",
		Short: "Import all leagues offered by the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.Imports.ImportLeagues(cmd.Context())
			if err != nil {
				return err
			}
			return c.writeReport(report)
		},
	}
}

func (c *cli) showLeaguesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-leagues",
		Short: "List the leagues stored locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			leagues, err := a.Imports.ListLeagues(cmd.Context())
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.writeJSON(leagues)
			}
			return writeLeagueTable(c.stdout, cmd.Root().Name(), leagues)
		},
	}
}

func (c *cli) createLeagueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-league <league-id> [season]",
		Short: "Import teams, players, groups, matches and goals of one league",
		Long: `create-league imports everything the service knows about a stored league
for one season. The season is four digits, e.g. 2526 for 2025/2026, and
defaults to the season ending this year.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || leagueID <= 0 {
				return usageError{fmt.Errorf("league id must be a positive integer, got %q", args[0])}
			}
			season := ""
			if len(args) == 2 {
				season = strings.TrimSpace(args[1])
			}

			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.Imports.CreateLeague(cmd.Context(), leagueID, season)
			if err != nil {
				return err
			}
			return c.writeReport(report)
		},
	}
}

func (c *cli) showGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-goals <match-id>",
		Short: "List the goals stored for one match",
		Long:  `show-goals takes the service's match id, as printed by the fixture feeds.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchID, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil || matchID <= 0 {
				return usageError{fmt.Errorf("match id must be a positive integer, got %q", args[0])}
			}

			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			goals, err := a.Imports.ListGoals(cmd.Context(), matchID)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.writeJSON(goals)
			}
			return writeGoalTable(c.stdout, goals)
		},
	}
}

func (c *cli) updateScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-score",
		Short: "Store goals from the live score feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			report, err := a.Imports.UpdateScores(cmd.Context())
			if err != nil {
				return err
			}
			return c.writeReport(report)
		},
	}
}

func (c *cli) methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the remote methods and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			methods := xmlsoccer.Methods()
			if c.jsonOut {
				return c.writeJSON(methodsView(methods))
			}
			return writeMethodTable(c.stdout, methods)
		},
	}
}

func (c *cli) invokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <method> [args...]",
		Short: "Call one remote method and print the raw response",
		Long: `invoke calls a remote method by name. Positional args are bound to the
method's declared parameters in order; run "methods" to list them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.importer(cmd.Context())
			if err != nil {
				return err
			}
			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, arg)
			}

			resp, err := a.Client.Invoke(cmd.Context(), args[0], values...)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return c.writeJSON(invokeView(resp))
			}
			_, err = c.stdout.Write(resp.Body)
			if err == nil && !strings.HasSuffix(string(resp.Body), "\n") {
				_, err = fmt.Fprintln(c.stdout)
			}
			return err
		},
	}
}
