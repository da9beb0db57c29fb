package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Season string `json:"season" validate:"omitempty,len=4,numeric"`
	Count  int    `validate:"gte=0"`
}

func TestStruct_ReportsFieldsByColumnName(t *testing.T) {
	t.Parallel()

	err := Struct(sample{Name: "", Season: "25", Count: -1})
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %T %v", err, err)
	}
	if len(errs["name"]) != 1 || errs["name"][0] != "is required" {
		t.Fatalf("unexpected name errors %v", errs["name"])
	}
	if len(errs["season"]) != 1 || errs["season"][0] != "must have length 4" {
		t.Fatalf("unexpected season errors %v", errs["season"])
	}
	if len(errs["Count"]) != 1 {
		t.Fatalf("expected untagged field to use its Go name, got %v", errs)
	}
	if !strings.HasPrefix(err.Error(), "validation failed: Count:") {
		t.Fatalf("expected sorted error message, got %q", err.Error())
	}
}

func TestStruct_ValidValue(t *testing.T) {
	t.Parallel()

	if err := Struct(sample{Name: "EPL", Season: "2526"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	if err := Merge(nil, nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	extra := Errors{}
	extra.Add("away_team_id", "must differ from home_team_id")
	merged := Merge(nil, extra)
	if merged == nil || !strings.Contains(merged.Error(), "away_team_id") {
		t.Fatalf("expected extra errors, got %v", merged)
	}

	base := Struct(sample{})
	merged = Merge(base, extra)
	var errs Errors
	if !errors.As(merged, &errs) || len(errs) != 2 {
		t.Fatalf("expected both fields, got %v", merged)
	}
}
