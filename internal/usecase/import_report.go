package usecase

import (
	"errors"
	"sort"

	"github.com/riskibarqy/xmlsoccer-import/internal/platform/validation"
)

const (
	EntityLeague = "league"
	EntityGroup  = "group"
	EntityTeam   = "team"
	EntityPlayer = "player"
	EntityMatch  = "match"
	EntityGoal   = "goal"
)

// RecordFailure is a record that was not stored. The import carries on after it.
type RecordFailure struct {
	Entity string            `json:"entity"`
	Label  string            `json:"label"`
	Fields validation.Errors `json:"fields,omitempty"`
	Reason string            `json:"reason"`
}

type ImportReport struct {
	Saved    map[string]int  `json:"saved"`
	Skipped  map[string]int  `json:"skipped"`
	Failures []RecordFailure `json:"failures,omitempty"`
}

func newImportReport() *ImportReport {
	return &ImportReport{
		Saved:   make(map[string]int),
		Skipped: make(map[string]int),
	}
}

func (r *ImportReport) save(entity string) {
	r.Saved[entity]++
}

func (r *ImportReport) skip(entity string) {
	r.Skipped[entity]++
}

func (r *ImportReport) fail(entity, label string, err error) {
	failure := RecordFailure{Entity: entity, Label: label, Reason: err.Error()}
	var fields validation.Errors
	if errors.As(err, &fields) {
		failure.Fields = fields
	}
	r.Failures = append(r.Failures, failure)
}

// Entities lists every entity that appears in the report, in import order.
func (r *ImportReport) Entities() []string {
	order := map[string]int{
		EntityLeague: 0, EntityGroup: 1, EntityTeam: 2, EntityPlayer: 3, EntityMatch: 4, EntityGoal: 5,
	}
	seen := make(map[string]struct{})
	for entity := range r.Saved {
		seen[entity] = struct{}{}
	}
	for entity := range r.Skipped {
		seen[entity] = struct{}{}
	}
	for _, failure := range r.Failures {
		seen[failure.Entity] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for entity := range seen {
		out = append(out, entity)
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

// FailuresOf counts failures of entity.
func (r *ImportReport) FailuresOf(entity string) int {
	n := 0
	for _, failure := range r.Failures {
		if failure.Entity == entity {
			n++
		}
	}
	return n
}
