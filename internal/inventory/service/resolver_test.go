package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshsaver/internal/inventory/model"
)

func TestResolveItem_ExactSKU(t *testing.T) {
	svc := newTestService(testItems())

	it := svc.ResolveItem("brd-400")
	require.NotNil(t, it)
	assert.Equal(t, "Britannia Bread 400g", it.Name)
}

func TestResolveItem_ExactName(t *testing.T) {
	svc := newTestService(testItems())

	it := svc.ResolveItem("  AMUL PANEER 250G ")
	require.NotNil(t, it)
	assert.Equal(t, "PNR-250", it.SKU)
}

func TestResolveItem_Substring(t *testing.T) {
	svc := newTestService(testItems())

	it := svc.ResolveItem("basmati")
	require.NotNil(t, it)
	assert.Equal(t, "RIC-5KG", it.SKU)
}

// точное совпадение имеет приоритет над более ранним частичным
func TestResolveItem_ExactBeatsEarlierSubstring(t *testing.T) {
	items := []model.InventoryItem{
		{SKU: "A-1", Name: "Amul Milk 500ml", UnitPrice: 72},
		{SKU: "B-1", Name: "Milk", UnitPrice: 50},
	}
	svc := newTestService(items)

	it := svc.ResolveItem("milk")
	require.NotNil(t, it)
	assert.Equal(t, "B-1", it.SKU)
}

func TestResolveItem_FirstSubstringWins(t *testing.T) {
	svc := newTestService(testItems())

	// "amul" входит в три имени, побеждает первое по порядку каталога
	it := svc.ResolveItem("amul")
	require.NotNil(t, it)
	assert.Equal(t, "MLK-500", it.SKU)
}

func TestResolveItem_NotFoundAndEmpty(t *testing.T) {
	svc := newTestService(testItems())

	assert.Nil(t, svc.ResolveItem("maggi noodles"))
	assert.Nil(t, svc.ResolveItem(""))
	assert.Nil(t, svc.ResolveItem("   "))
}
