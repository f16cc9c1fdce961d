package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateLoss_ByName(t *testing.T) {
	svc := newTestService(testItems())

	est := svc.EstimateLoss("Amul Milk 500ml", 50)
	require.NotNil(t, est)
	assert.Equal(t, 50.0, est.Quantity)
	assert.Equal(t, 72.0, est.PerUnitValue)
	assert.Equal(t, 3600.0, est.TotalValue)
	assert.Equal(t, "MLK-500", est.Item.SKU)
}

func TestEstimateLoss_BySKU(t *testing.T) {
	svc := newTestService(testItems())

	est := svc.EstimateLoss("pnr-250", 4)
	require.NotNil(t, est)
	assert.Equal(t, 95.0, est.PerUnitValue)
	assert.Equal(t, 380.0, est.TotalValue)
}

func TestEstimateLoss_InvalidArguments(t *testing.T) {
	svc := newTestService(testItems())

	assert.Nil(t, svc.EstimateLoss("Amul Milk 500ml", 0))
	assert.Nil(t, svc.EstimateLoss("Amul Milk 500ml", -5))
	assert.Nil(t, svc.EstimateLoss("", 10))
	assert.Nil(t, svc.EstimateLoss("   ", 10))
	assert.Nil(t, svc.EstimateLoss("Amul Milk 500ml", math.NaN()))
}

func TestEstimateLoss_NoMatch(t *testing.T) {
	svc := newTestService(testItems())
	assert.Nil(t, svc.EstimateLoss("totally unknown product xyz", 3))
}

// не конечное количество → откат на quantityAtRisk позиции
func TestEstimateLoss_InfiniteQuantityFallsBack(t *testing.T) {
	svc := newTestService(testItems())

	est := svc.EstimateLoss("MLK-500", math.Inf(1))
	require.NotNil(t, est)
	assert.Equal(t, 50.0, est.Quantity)
	assert.Equal(t, 3600.0, est.TotalValue)

	// у позиции нет quantityAtRisk → количество 0
	est = svc.EstimateLoss("CRD-200", math.Inf(1))
	require.NotNil(t, est)
	assert.Equal(t, 0.0, est.Quantity)
	assert.Equal(t, 0.0, est.TotalValue)
}

// sku и name уходят в матчер одновременно; точный sku побеждает имя
func TestEstimateLoss_TopRankedResultUsed(t *testing.T) {
	svc := newTestService(testItems())

	est := svc.EstimateLoss("MLK-500", 2)
	require.NotNil(t, est)
	assert.Equal(t, "MLK-500", est.Item.SKU)
	assert.Equal(t, 144.0, est.TotalValue)
}
