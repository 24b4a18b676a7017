package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations return a SQL fragment using Spanner named parameters and the
// parameters it references. paramIndex is the first free parameter number.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("spu_id", "spu-1") generates "spu_id = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, name), map[string]interface{}{name: c.value}
}
