package service

import (
	"math"

	"freshsaver/internal/inventory/model"
)

// EstimateLoss — денежная оценка риска по одной позиции. Пустой идентификатор
// или quantity <= 0 — это не ошибка, а «нет оценки» (nil). Запрос уходит в
// MatchItems сразу и как sku, и как name; берётся только верхний результат.
func (s *Service) EstimateLoss(nameOrSku string, quantity float64) *model.LossEstimate {
	if normalize(nameOrSku) == "" || !(quantity > 0) {
		return nil
	}

	matches := s.MatchItems(model.MatchQuery{SKU: nameOrSku, Name: nameOrSku})
	if len(matches) == 0 {
		return nil
	}
	it := matches[0].Item

	qty := quantity
	if math.IsInf(quantity, 0) || math.IsNaN(quantity) {
		// не конечное число → откат на количество под риском из каталога
		qty = 0
		if it.QuantityAtRisk != nil {
			qty = *it.QuantityAtRisk
		}
	}

	return &model.LossEstimate{
		Item:         it,
		Quantity:     qty,
		TotalValue:   it.UnitPrice * qty,
		PerUnitValue: it.UnitPrice,
	}
}
