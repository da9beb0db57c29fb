package querybuilder

import "testing"

func TestSelectBuilder_WhereAndOrder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("country", "Scotland"), In("interface_id", []any{int64(45), int64(46)})).
		OrderBy("name ASC", "id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT id, name FROM teams WHERE country = $1 AND interface_id IN ($2, $3) ORDER BY name ASC, id ASC"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 3 || args[0] != "Scotland" || args[2] != int64(46) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("teams").Where(In("interface_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("goals").
		Columns("match_id", "minute").
		Values(int64(7), 23).
		Suffix(" RETURNING id ").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	want := "INSERT INTO goals (match_id, minute) VALUES ($1, $2) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != 23 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertInto("goals").Columns("match_id", "minute").Values(int64(7)).ToSQL(); err == nil {
		t.Fatalf("expected error for missing value")
	}
	if _, _, err := InsertInto("").Columns("id").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for empty table")
	}
}
