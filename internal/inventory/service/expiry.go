package service

import (
	"sort"

	"freshsaver/internal/inventory/model"
)

// DefaultExpiryWindow — окно по умолчанию для expiringItems, в днях.
const DefaultExpiryWindow = 30

// ExpiringItems — позиции, у которых срок годности известен и истекает в
// пределах withinDays, по возрастанию daysUntilExpiry. Каталог не меняется.
func (s *Service) ExpiringItems(withinDays int) []model.InventoryItem {
	out := make([]model.InventoryItem, 0)
	for _, it := range s.cat.Items() {
		if it.DaysUntilExpiry != nil && *it.DaysUntilExpiry <= withinDays {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DaysUntilExpiry < *out[j].DaysUntilExpiry
	})
	return out
}
