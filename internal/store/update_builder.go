package store

import (
	"fmt"
	"strings"
)

// updateBuilder accumulates (column, value) pairs for a partial UPDATE and
// renders the SET clause with contiguous positional placeholders starting at
// $1. The WHERE-clause placeholder follows immediately after the SET ones,
// so numbering is decided in one place instead of re-derived per call site.
type updateBuilder struct {
	columns []string
	args    []any
}

// Set records an assignment for the given column. Columns are rendered in
// the order they were added.
func (b *updateBuilder) Set(column string, value any) {
	b.columns = append(b.columns, column)
	b.args = append(b.args, value)
}

// Empty reports whether no assignments were added.
func (b *updateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// SetClause renders the assignments as "col1 = $1, col2 = $2, …".
func (b *updateBuilder) SetClause() string {
	parts := make([]string, len(b.columns))
	for i, col := range b.columns {
		parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return strings.Join(parts, ", ")
}

// NextPlaceholder returns the positional index available after the SET
// clause, i.e. the one to use in the WHERE clause.
func (b *updateBuilder) NextPlaceholder() int {
	return len(b.columns) + 1
}

// Args returns the ordered parameter list: SET values first, then any extra
// trailing parameters (the WHERE-clause id).
func (b *updateBuilder) Args(extra ...any) []any {
	out := make([]any, 0, len(b.args)+len(extra))
	out = append(out, b.args...)
	out = append(out, extra...)
	return out
}
