package league

import (
	"errors"
	"testing"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

func TestParseHistoricalData(t *testing.T) {
	t.Parallel()

	cases := map[string]HistoricalData{
		"Yes":     HistoricalYes,
		" yes ":   HistoricalYes,
		"Partial": HistoricalPartial,
		"No":      HistoricalNo,
		"":        HistoricalNo,
		"maybe":   HistoricalNo,
	}
	for raw, want := range cases {
		if got := ParseHistoricalData(raw); got != want {
			t.Fatalf("ParseHistoricalData(%q)=%s want %s", raw, got, want)
		}
	}
}

func TestLeague_NormalizeAppliesDefaultCountry(t *testing.T) {
	t.Parallel()

	item := League{Name: " UEFA Champions League ", InterfaceID: 16}.Normalize()
	if item.Country != DefaultCountry || item.Name != "UEFA Champions League" {
		t.Fatalf("unexpected normalized league %+v", item)
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid league, got %v", err)
	}
}

func TestLeague_ValidateReportsFields(t *testing.T) {
	t.Parallel()

	err := League{HistoricalData: HistoricalData(5), NumberOfMatches: -1}.Validate()
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	for _, field := range []string{"name", "country", "historical_data", "number_of_matches"} {
		if len(errs[field]) == 0 {
			t.Fatalf("expected error for %s in %v", field, errs)
		}
	}
}
