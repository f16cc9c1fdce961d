package model

// InventoryItem — одна позиция каталога. Каталог владеет срезом, все остальные
// компоненты держат read-only ссылки.
type InventoryItem struct {
	SKU             string   `json:"sku"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	UnitPrice       float64  `json:"unitPrice"`
	Unit            string   `json:"unit"`
	Location        string   `json:"location"`
	ShelfLifeDays   int      `json:"shelfLifeDays"`
	QuantityAtRisk  *float64 `json:"quantityAtRisk,omitempty"`
	DaysUntilExpiry *int     `json:"daysUntilExpiry,omitempty"`
}

// MatchQuery — все поля опциональны; пустая строка отключает критерий.
type MatchQuery struct {
	SKU      string `json:"sku,omitempty"`
	Name     string `json:"name,omitempty"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
}

// Какой критерий дал совпадение.
const (
	MatchedBySKU      = "sku"
	MatchedByName     = "name"
	MatchedByBrand    = "brand"
	MatchedByCategory = "category"
)

type MatchResult struct {
	Item            *InventoryItem `json:"item"`
	MatchConfidence float64        `json:"matchConfidence"`
	MatchedBy       string         `json:"matchedBy"`
}

// LossEstimate: TotalValue = PerUnitValue * Quantity, всегда точно.
type LossEstimate struct {
	Item         *InventoryItem `json:"item"`
	Quantity     float64        `json:"quantity"`
	TotalValue   float64        `json:"totalValue"`
	PerUnitValue float64        `json:"perUnitValue"`
}
