package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("skus").
		Select("sku_id", "attribute_names", "attribute_values").
		Build()

	assert.Equal(t, "SELECT sku_id, attribute_names, attribute_values FROM skus", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("skus").Build()

	assert.Equal(t, "SELECT * FROM skus", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("sku_prices").
		Select("price_id").
		Where(Eq("sku_id", "sku-1")).
		Where(Eq("price_type", "SALE")).
		Build()

	assert.Equal(t, "SELECT price_id FROM sku_prices WHERE sku_id = @p0 AND price_type = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "sku-1",
		"p1": "SALE",
	}, stmt.Params)
}

func TestBuilder_MultipleOrderKeys(t *testing.T) {
	stmt := From("sku_prices").
		Select("price_id").
		OrderBy("currency", Asc).
		OrderBy("created_at", Desc).
		Build()

	assert.Equal(t, "SELECT price_id FROM sku_prices ORDER BY currency ASC, created_at DESC", stmt.SQL)
}

func TestBuilder_Limit(t *testing.T) {
	stmt := From("skus").
		Select("sku_id").
		Where(Eq("spu_id", "spu-1")).
		Limit(10).
		Build()

	assert.Equal(t, "SELECT sku_id FROM skus WHERE spu_id = @p0 LIMIT @limit", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "spu-1",
		"limit": int64(10),
	}, stmt.Params)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("skus").Select("sku_id")
	filtered := base.Where(Eq("spu_id", "spu-1"))
	ordered := filtered.OrderBy("sku_id", Asc)

	assert.Equal(t, "SELECT sku_id FROM skus", base.Build().SQL)
	assert.Equal(t, "SELECT sku_id FROM skus WHERE spu_id = @p0", filtered.Build().SQL)
	assert.Equal(t, "SELECT sku_id FROM skus WHERE spu_id = @p0 ORDER BY sku_id ASC", ordered.Build().SQL)
}

func TestBuilder_BranchesDoNotShareState(t *testing.T) {
	base := From("skus").Select("sku_id").Where(Eq("spu_id", "spu-1"))

	a := base.Where(Eq("sku_code", "A"))
	b := base.Where(Eq("sku_code", "B"))

	assert.Equal(t, "A", a.Build().Params["p1"])
	assert.Equal(t, "B", b.Build().Params["p1"])
}

func TestCondition_EqWithParamIndex(t *testing.T) {
	sql, params := Eq("currency", "CNY").SQL(5)

	assert.Equal(t, "currency = @p5", sql)
	assert.Equal(t, map[string]interface{}{"p5": "CNY"}, params)
}

func TestBuilder_String(t *testing.T) {
	s := From("skus").Select("sku_id").Where(Eq("spu_id", "spu-1")).String()

	assert.Contains(t, s, "SQL: SELECT sku_id FROM skus WHERE spu_id = @p0")
	assert.Contains(t, s, "p0:spu-1")
}
