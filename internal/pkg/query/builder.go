package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type orderTerm struct {
	column    string
	direction Direction
}

// Builder constructs SQL SELECT statements for Cloud Spanner.
// Every method returns a new Builder, so a partially built query can be shared.
// Parameter names are generated, never written by hand.
type Builder struct {
	table   string
	columns []string
	where   []Condition
	order   []orderTerm
	limit   int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the projection. No columns means SELECT *.
func (b *Builder) Select(columns ...string) *Builder {
	next := b.clone()
	next.columns = append(next.columns, columns...)
	return next
}

// Where adds a condition. Conditions are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	next := b.clone()
	next.where = append(next.where, condition)
	return next
}

// OrderBy appends a sort key. Keys apply in the order they were added.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	next := b.clone()
	next.order = append(next.order, orderTerm{column: column, direction: direction})
	return next
}

// Limit caps the number of rows returned. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	next := b.clone()
	next.limit = limit
	return next
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.columns, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.where) > 0 {
		parts := make([]string, 0, len(b.where))
		next := 0
		for _, condition := range b.where {
			fragment, condParams := condition.SQL(next)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			next += len(condParams)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.order) > 0 {
		terms := make([]string, 0, len(b.order))
		for _, o := range b.order {
			dir := "ASC"
			if o.direction == Desc {
				dir = "DESC"
			}
			terms = append(terms, o.column+" "+dir)
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	return &Builder{
		table:   b.table,
		columns: append([]string(nil), b.columns...),
		where:   append([]Condition(nil), b.where...),
		order:   append([]orderTerm(nil), b.order...),
		limit:   b.limit,
	}
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
