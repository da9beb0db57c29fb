package xmlsoccer

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLookupMethod_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	sig, err := LookupMethod("  getplayersbyteam ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sig.Name != "GetPlayersByTeam" {
		t.Fatalf("unexpected canonical name %q", sig.Name)
	}
	if len(sig.Params) != 1 || sig.Params[0].Name != "teamId" || sig.Params[0].Type != ParamInt {
		t.Fatalf("unexpected params %+v", sig.Params)
	}
}

func TestLookupMethod_UnknownMethod(t *testing.T) {
	t.Parallel()

	_, err := LookupMethod("GetEverything")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestMethods_AreSortedAndComplete(t *testing.T) {
	t.Parallel()

	methods := Methods()
	if len(methods) != len(methodTable) {
		t.Fatalf("expected %d methods, got %d", len(methodTable), len(methods))
	}
	for i := 1; i < len(methods); i++ {
		if methods[i-1].Name >= methods[i].Name {
			t.Fatalf("methods not sorted at %d: %s >= %s", i, methods[i-1].Name, methods[i].Name)
		}
	}
}

func TestBind_MapsPositionalArgsInDeclaredOrder(t *testing.T) {
	t.Parallel()

	sig, err := LookupMethod("GetFixturesByDateIntervalAndLeague")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	bound := sig.Bind([]any{3, start, end, "surplus", 99})

	if len(bound) != 3 {
		t.Fatalf("expected surplus args to be dropped, got %d", len(bound))
	}
	want := []struct{ name, encoded string }{
		{"league", "3"},
		{"startDateString", "2026-08-01 00:00"},
		{"endDateString", "2026-08-31 23:59"},
	}
	for i, w := range want {
		if bound[i].Name != w.name || bound[i].Encoded != w.encoded {
			t.Fatalf("arg %d: got %s=%q want %s=%q", i, bound[i].Name, bound[i].Encoded, w.name, w.encoded)
		}
	}
}

func TestBind_OmitsMissingAndNilArgs(t *testing.T) {
	t.Parallel()

	sig, err := LookupMethod("GetHistoricMatchesByTeamsAndDateInterval")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	bound := sig.Bind([]any{"45abc", nil})
	if len(bound) != 1 {
		t.Fatalf("expected one bound argument, got %+v", bound)
	}
	if bound[0].Name != "team1Id" || bound[0].Value != int64(45) || bound[0].Encoded != "45" {
		t.Fatalf("unexpected bound argument %+v", bound[0])
	}

	if got := sig.Bind(nil); len(got) != 0 {
		t.Fatalf("expected no arguments, got %+v", got)
	}
}

func TestIndexSignatures_RejectsInvalidTables(t *testing.T) {
	t.Parallel()

	cases := map[string][]MethodSignature{
		"empty name":      {{Name: " "}},
		"duplicate name":  {{Name: "GetLiveScore"}, {Name: "getlivescore"}},
		"empty param":     {{Name: "A", Params: []Param{{Name: "", Type: ParamInt}}}},
		"invalid type":    {{Name: "A", Params: []Param{{Name: "x", Type: ParamType(42)}}}},
		"duplicate param": {{Name: "A", Params: []Param{{Name: "x", Type: ParamInt}, {Name: "X", Type: ParamString}}}},
	}
	for name, table := range cases {
		if _, err := indexSignatures(table); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	index, err := indexSignatures(methodTable)
	if err != nil {
		t.Fatalf("declared table must be valid: %v", err)
	}
	for key := range index {
		if key != strings.ToLower(key) {
			t.Fatalf("index key %q is not lower-cased", key)
		}
	}
}

func TestCacheTTL_PerMethodClass(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Duration{
		"GetLiveScore":                        25 * time.Second,
		"GetLiveScoreByLeague":                25 * time.Second,
		"GetOddsByFixtureMatchID":             time.Hour,
		"GetHistoricMatchesByLeagueAndSeason": time.Hour,
		"GetAllTeams":                         time.Hour,
		"GetAllTeamsByLeagueAndSeason":        time.Hour,
		"GetAllLeagues":                       5 * time.Minute,
		"GetPlayersByTeam":                    5 * time.Minute,
	}
	for method, want := range cases {
		if got := CacheTTL(method); got != want {
			t.Fatalf("CacheTTL(%s)=%s want %s", method, got, want)
		}
	}
}
