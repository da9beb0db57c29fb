package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel inserts every exported field of model that carries a db tag.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

// Conflict describes the ON CONFLICT handling of UpsertModel.
type Conflict struct {
	// Keys are the unique columns the conflict is detected on.
	Keys []string
	// Touch, when set, is a timestamp column set to NOW() on update.
	Touch string
	// Returning is appended as a RETURNING list when set.
	Returning string
}

// UpsertModel inserts model and, on a key conflict, overwrites every
// non-key column with the incoming value.
func UpsertModel(table string, model any, conflict Conflict) (string, []any, error) {
	if len(conflict.Keys) == 0 {
		return "", nil, fmt.Errorf("upsert conflict columns are required")
	}
	cols, _, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	keys := make(map[string]struct{}, len(conflict.Keys))
	for _, k := range conflict.Keys {
		keys[k] = struct{}{}
	}
	var updates []string
	for _, col := range cols {
		if _, isKey := keys[col]; !isKey {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}

	suffix := fmt.Sprintf("ON CONFLICT (%s)", strings.Join(conflict.Keys, ", "))
	if len(updates) == 0 {
		suffix += " DO NOTHING"
	} else {
		if touch := strings.TrimSpace(conflict.Touch); touch != "" {
			updates = append(updates, touch+" = NOW()")
		}
		suffix += " DO UPDATE SET " + strings.Join(updates, ", ")
	}
	if returning := strings.TrimSpace(conflict.Returning); returning != "" {
		suffix += " RETURNING " + returning
	}

	return InsertModel(table, model, suffix)
}

// modelColumns reads the db-tagged fields of a struct, or a pointer to one,
// in declaration order. Untagged fields and `db:"-"` are skipped.
func modelColumns(model any) ([]string, []any, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil, nil, fmt.Errorf("model cannot be nil")
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	var (
		cols []string
		vals []any
	)
	for _, field := range reflect.VisibleFields(v.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.FieldByIndex(field.Index).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
