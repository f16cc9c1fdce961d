package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshsaver/internal/inventory/model"
)

func mk(sku, name string, price float64, qtyAtRisk *float64) model.InventoryItem {
	return model.InventoryItem{SKU: sku, Name: name, UnitPrice: price, QuantityAtRisk: qtyAtRisk}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const sampleCSV = `sku,name,brand,category,unit_price,unit,location,shelf_life_days,quantity_at_risk,days_until_expiry
MLK-500,Amul Milk 500ml,Amul,Dairy,72,packet,Cold Storage A1,7,50,2
BAD-1,Broken Row,Amul,Dairy,not-a-price,packet,Cold Storage A1,7,,
RIC-5KG,India Gate Basmati Rice 5kg,India Gate,Grains,540,bag,Dry Storage D1,365,,
`

func TestLoad_CSV(t *testing.T) {
	p := writeTemp(t, "catalog.csv", sampleCSV)

	cat, err := Load(p, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len()) // BAD-1 отсеян валидацией

	items := cat.Items()
	assert.Equal(t, "MLK-500", items[0].SKU)
	assert.Equal(t, 72.0, items[0].UnitPrice)
	assert.Equal(t, 7, items[0].ShelfLifeDays)
	require.NotNil(t, items[0].QuantityAtRisk)
	assert.Equal(t, 50.0, *items[0].QuantityAtRisk)
	require.NotNil(t, items[0].DaysUntilExpiry)
	assert.Equal(t, 2, *items[0].DaysUntilExpiry)

	// порядок источника сохранён; опциональные поля остаются nil
	assert.Equal(t, "RIC-5KG", items[1].SKU)
	assert.Nil(t, items[1].QuantityAtRisk)
	assert.Nil(t, items[1].DaysUntilExpiry)
}

func TestLoad_CSV_AlternateHeaders(t *testing.T) {
	p := writeTemp(t, "catalog.csv", "SKU,Name,Price,Days Until Expiry\nMLK-500,Amul Milk 500ml,72,2\n")

	cat, err := Load(p, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, 72.0, cat.Items()[0].UnitPrice)
	require.NotNil(t, cat.Items()[0].DaysUntilExpiry)
	assert.Equal(t, 2, *cat.Items()[0].DaysUntilExpiry)
}

func TestLoad_JSON(t *testing.T) {
	p := writeTemp(t, "catalog.json", `[
		{"sku":"MLK-500","name":"Amul Milk 500ml","brand":"Amul","category":"Dairy","unitPrice":72,"unit":"packet","location":"A1","shelfLifeDays":7,"quantityAtRisk":50,"daysUntilExpiry":2},
		{"sku":"","name":"","unitPrice":10},
		{"sku":"RIC-5KG","name":"Basmati Rice 5kg","unitPrice":540}
	]`)

	cat, err := Load(p, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len()) // безымянная запись отброшена
	assert.Equal(t, "MLK-500", cat.Items()[0].SKU)
	assert.Equal(t, "RIC-5KG", cat.Items()[1].SKU)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), zerolog.Nop())
	assert.Error(t, err)

	p := writeTemp(t, "catalog.txt", "whatever")
	_, err = Load(p, zerolog.Nop())
	assert.Error(t, err)

	// только шапка → пустой каталог → ошибка старта
	p = writeTemp(t, "catalog.csv", "sku,name,unit_price\n")
	_, err = Load(p, zerolog.Nop())
	assert.ErrorContains(t, err, "empty")
}

func TestCheckItem(t *testing.T) {
	neg := -1.0
	cases := []struct {
		name string
		err  bool
		it   func() error
	}{
		{"valid", false, func() error {
			return checkItem(mk("A", "Milk", 10, nil))
		}},
		{"no identity", true, func() error {
			return checkItem(mk("", "  ", 10, nil))
		}},
		{"negative price", true, func() error {
			return checkItem(mk("A", "Milk", -1, nil))
		}},
		{"negative qty at risk", true, func() error {
			return checkItem(mk("A", "Milk", 10, &neg))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.err {
				assert.Error(t, c.it())
			} else {
				assert.NoError(t, c.it())
			}
		})
	}
}
