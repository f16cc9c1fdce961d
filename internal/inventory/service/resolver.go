package service

import (
	"strings"

	"freshsaver/internal/inventory/model"
)

// ResolveItem — быстрый поиск одной позиции: сначала точное совпадение
// нормализованного sku или имени, затем первая позиция, чьё имя содержит
// запрос подстрокой. Без ранжирования, побеждает первая по порядку каталога.
func (s *Service) ResolveItem(query string) *model.InventoryItem {
	q := normalize(query)
	if q == "" {
		return nil
	}

	items := s.cat.Items()
	for i := range items {
		if normalize(items[i].SKU) == q || normalize(items[i].Name) == q {
			return &items[i]
		}
	}
	for i := range items {
		if strings.Contains(normalize(items[i].Name), q) {
			return &items[i]
		}
	}
	return nil
}
