package xmlsoccer

import (
	"errors"
	"strings"
	"testing"
)

func TestFingerprint_IsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Fingerprint("GetFixturesByLeagueAndSeason", 3, "2526")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	second, err := Fingerprint("getfixturesbyleagueandseason", "3", "2526", "ignored")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if first != second {
		t.Fatalf("expected equal fingerprints, got %s and %s", first, second)
	}
	if !strings.HasPrefix(first, "xmlsoccer:getfixturesbyleagueandseason:") {
		t.Fatalf("unexpected fingerprint format %s", first)
	}
}

func TestFingerprint_DiffersPerArgumentPosition(t *testing.T) {
	t.Parallel()

	base, _ := Fingerprint("GetFixturesByLeagueAndSeason", 3, "2526")
	variants := [][]any{
		{4, "2526"},
		{3, "2425"},
		{3},
		{},
	}
	seen := map[string]struct{}{base: {}}
	for _, args := range variants {
		fp, err := Fingerprint("GetFixturesByLeagueAndSeason", args...)
		if err != nil {
			t.Fatalf("fingerprint %v: %v", args, err)
		}
		if _, dup := seen[fp]; dup {
			t.Fatalf("fingerprint collision for args %v", args)
		}
		seen[fp] = struct{}{}
	}

	other, _ := Fingerprint("GetAllTeamsByLeagueAndSeason", 3, "2526")
	if other == base {
		t.Fatalf("different methods must not share a fingerprint")
	}
}

func TestFingerprint_ArrayItemsDoNotCollideWithJoinedScalar(t *testing.T) {
	t.Parallel()

	array := fingerprintOf("M", []Argument{{Param: Param{Name: "ids", Type: ParamArray}, Value: []string{"1", "2"}, Encoded: "1,2"}})
	single := fingerprintOf("M", []Argument{{Param: Param{Name: "ids", Type: ParamArray}, Value: []string{"1,2"}, Encoded: "1,2"}})
	if array == single {
		t.Fatalf("expected distinct fingerprints for [1 2] and [1,2]")
	}
}

func TestFingerprint_SeparatorBytesInValuesDoNotCollide(t *testing.T) {
	t.Parallel()

	two, err := Fingerprint("GetFixturesByDateInterval", "2026-01-01", "2026-02-01")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	cases := [][]any{
		{"2026-01-01\x1fenddatestring=string:2026-02-01"},
		{"2026-01-01\x1f10:enddatestring6:string8:2026-02-01"},
		{"2026-01-012026-02-01"},
		{"2026-01-01"},
	}
	for _, args := range cases {
		fp, err := Fingerprint("GetFixturesByDateInterval", args...)
		if err != nil {
			t.Fatalf("fingerprint %q: %v", args, err)
		}
		if fp == two {
			t.Fatalf("fingerprint of %q collides with the two argument call", args)
		}
	}

	split := fingerprintOf("M", []Argument{{Param: Param{Name: "ids", Type: ParamArray}, Value: []string{"a", "b"}}})
	joined := fingerprintOf("M", []Argument{{Param: Param{Name: "ids", Type: ParamArray}, Value: []string{"a\x1eb"}}})
	empty := fingerprintOf("M", []Argument{{Param: Param{Name: "ids", Type: ParamArray}, Value: []string{"a", "", "b"}}})
	if split == joined || split == empty || joined == empty {
		t.Fatalf("expected distinct array fingerprints, got %s %s %s", split, joined, empty)
	}
}

func TestFingerprint_UnknownMethod(t *testing.T) {
	t.Parallel()

	if _, err := Fingerprint("Nope"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}
