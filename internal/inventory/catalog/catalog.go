// Package catalog хранит неизменяемый каталог позиций, загруженный один раз
// при старте процесса. Порядок записей = порядок источника и значим:
// по нему идёт перебор при поиске и разрешаются ничьи по confidence.
package catalog

import "freshsaver/internal/inventory/model"

type Catalog struct {
	items []model.InventoryItem
}

func New(items []model.InventoryItem) Catalog {
	return Catalog{items: items}
}

// Items отдаёт срез как есть: читатели не мутируют его по контракту,
// копирование на каждый запрос не нужно.
func (c Catalog) Items() []model.InventoryItem { return c.items }

func (c Catalog) Len() int { return len(c.items) }
