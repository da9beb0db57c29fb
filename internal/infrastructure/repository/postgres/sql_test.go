package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/team"
	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fakeErr("pq: relation teams does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullableString(t *testing.T) {
	if got := nullableString("  "); got != nil {
		t.Fatalf("expected nil for blank string, got %q", *got)
	}
	got := nullableString(" Emirates ")
	if got == nil || *got != "Emirates" {
		t.Fatalf("unexpected value: %v", got)
	}
	if stringValue(nil) != "" || stringValue(got) != "Emirates" {
		t.Fatalf("unexpected stringValue round trip")
	}
}

func TestInt64SliceToAny(t *testing.T) {
	got := int64SliceToAny([]int64{3, 9})
	if len(got) != 2 || got[0] != int64(3) || got[1] != int64(9) {
		t.Fatalf("unexpected values: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestTeamUpsertQuery_KeysOnInterfaceIDAndTouchesUpdatedAt(t *testing.T) {
	query, args, err := qb.UpsertModel("teams", teamToUpsert(team.Team{InterfaceID: 45, Name: "Celtic", Country: "Scotland"}), upsertByInterfaceID)
	if err != nil {
		t.Fatalf("build team upsert: %v", err)
	}

	for _, want := range []string{"ON CONFLICT (interface_id) DO UPDATE SET", "name = EXCLUDED.name", "updated_at = NOW()", "RETURNING id"} {
		if !strings.Contains(query, want) {
			t.Fatalf("expected %q in query:\n%s", want, query)
		}
	}
	if strings.Contains(query, "interface_id = EXCLUDED.interface_id") {
		t.Fatalf("conflict key must not be overwritten:\n%s", query)
	}
	if len(args) == 0 || args[0] != int64(45) {
		t.Fatalf("expected interface id as first arg, got %+v", args)
	}
}
