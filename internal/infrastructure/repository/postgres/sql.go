package postgres

import (
	"database/sql"
	"errors"
	"strings"

	qb "github.com/riskibarqy/xmlsoccer-import/internal/platform/querybuilder"
)

// upsertByInterfaceID re-imports a provider row in place and bumps updated_at.
var upsertByInterfaceID = qb.Conflict{Keys: []string{"interface_id"}, Touch: "updated_at", Returning: "id"}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func nullableString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func int64SliceToAny(items []int64) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
