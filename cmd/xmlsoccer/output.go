package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/xmlsoccer-import/external/xmlsoccer"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/goal"
	"github.com/riskibarqy/xmlsoccer-import/internal/domain/league"
	"github.com/riskibarqy/xmlsoccer-import/internal/usecase"
)

func (c *cli) writeJSON(v any) error {
	encoded, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}
	_, err = fmt.Fprintf(c.stdout, "%s\n", encoded)
	return err
}

// writeReport prints failures to stderr and the totals to stdout.
func (c *cli) writeReport(report *usecase.ImportReport) error {
	for _, failure := range report.Failures {
		fmt.Fprintf(c.stderr, "Failed to save %s '%s': %s\n", failure.Entity, failure.Label, failure.Reason)
	}
	if c.jsonOut {
		return c.writeJSON(report)
	}
	return writeReportSummary(c.stdout, report)
}

func writeReportSummary(w io.Writer, report *usecase.ImportReport) error {
	entities := report.Entities()
	if len(entities) == 0 {
		_, err := fmt.Fprintln(w, "Nothing imported")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tSAVED\tSKIPPED\tFAILED")
	for _, entity := range entities {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n",
			entity, report.Saved[entity], report.Skipped[entity], report.FailuresOf(entity))
	}
	return tw.Flush()
}

func writeLeagueTable(w io.Writer, command string, leagues []league.League) error {
	if len(leagues) == 0 {
		_, err := fmt.Fprintf(w, "No leagues found. Import by %s import-leagues\n", command)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINTERFACE ID\tNAME\tCOUNTRY\tHISTORICAL DATA\tFIXTURES\tLIVESCORE\tMATCHES\tLATEST MATCH\tCUP")
	for _, l := range leagues {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			l.ID, l.InterfaceID, l.Name, l.Country, l.HistoricalData,
			yesNo(l.Fixtures), yesNo(l.Livescore), l.NumberOfMatches,
			formatOptionalTime(l.LatestMatch), yesNo(l.IsCup))
	}
	return tw.Flush()
}

func writeGoalTable(w io.Writer, goals []goal.Goal) error {
	if len(goals) == 0 {
		_, err := fmt.Fprintln(w, "No goals stored for this match")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MINUTE\tTEAM ID\tPLAYER ID\tOWN GOAL\tPENALTY")
	for _, g := range goals {
		playerID := "-"
		if g.PlayerID != nil {
			playerID = strconv.FormatInt(*g.PlayerID, 10)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", g.Minute, g.TeamID, playerID, yesNo(g.OwnGoal), yesNo(g.Penalty))
	}
	return tw.Flush()
}

func writeMethodTable(w io.Writer, methods []xmlsoccer.MethodSignature) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPARAMETERS\tCACHE TTL")
	for _, m := range methods {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, formatParams(m.Params), xmlsoccer.CacheTTL(m.Name))
	}
	return tw.Flush()
}

type methodEntry struct {
	Name     string            `json:"name"`
	Params   map[string]string `json:"params"`
	Order    []string          `json:"order"`
	CacheTTL string            `json:"cache_ttl"`
}

func methodsView(methods []xmlsoccer.MethodSignature) []methodEntry {
	out := make([]methodEntry, 0, len(methods))
	for _, m := range methods {
		entry := methodEntry{
			Name:     m.Name,
			Params:   make(map[string]string, len(m.Params)),
			Order:    make([]string, 0, len(m.Params)),
			CacheTTL: xmlsoccer.CacheTTL(m.Name).String(),
		}
		for _, p := range m.Params {
			entry.Params[p.Name] = p.Type.String()
			entry.Order = append(entry.Order, p.Name)
		}
		out = append(out, entry)
	}
	return out
}

type invokeEntry struct {
	Method      string    `json:"method"`
	URL         string    `json:"url"`
	Fingerprint string    `json:"fingerprint"`
	ContentHash string    `json:"content_hash,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	CachedAt    time.Time `json:"cached_at"`
	FromCache   bool      `json:"from_cache"`
	Body        string    `json:"body"`
}

func invokeView(resp *xmlsoccer.Response) invokeEntry {
	return invokeEntry{
		Method:      resp.Method,
		URL:         resp.Request.URL(),
		Fingerprint: resp.Request.Fingerprint,
		ContentHash: resp.ContentHash,
		SourceURL:   resp.SourceURL,
		CachedAt:    resp.CachedAt,
		FromCache:   resp.FromCache,
		Body:        string(resp.Body),
	}
}

func formatParams(params []xmlsoccer.Param) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+":"+p.Type.String())
	}
	return strings.Join(parts, ", ")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
