package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// params collects bind values and hands out postgres $n placeholders.
type params struct {
	values []any
}

func (p *params) bind(v any) string {
	p.values = append(p.values, v)
	return "$" + strconv.Itoa(len(p.values))
}

type Condition interface {
	writeTo(buf *strings.Builder, p *params)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeTo(buf *strings.Builder, p *params) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(p.bind(c.value))
}

type inCondition struct {
	column string
	values []any
}

// In matches any of values. An empty list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) writeTo(buf *strings.Builder, p *params) {
	if len(c.values) == 0 {
		buf.WriteString("1=0")
		return
	}

	placeholders := make([]string, len(c.values))
	for i, v := range c.values {
		placeholders[i] = p.bind(v)
	}
	buf.WriteString(c.column)
	buf.WriteString(" IN (")
	buf.WriteString(strings.Join(placeholders, ", "))
	buf.WriteString(")")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Where adds conditions joined with AND.
func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		buf strings.Builder
		p   params
	)
	fmt.Fprintf(&buf, "SELECT %s FROM %s", strings.Join(b.columns, ", "), b.table)
	for i, c := range b.where {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.writeTo(&buf, &p)
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(b.orderBy, ", "))
	}

	return buf.String(), p.values, nil
}

// InsertBuilder writes a single-row INSERT.
type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// Suffix is appended verbatim, e.g. an ON CONFLICT or RETURNING clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.values) != len(b.columns):
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	var p params
	placeholders := make([]string, len(b.values))
	for i, v := range b.values {
		placeholders[i] = p.bind(v)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		b.table, strings.Join(b.columns, ", "), strings.Join(placeholders, ", "))
	if b.suffix != "" {
		query += " " + b.suffix
	}
	return query, p.values, nil
}
