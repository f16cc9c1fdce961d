package service

import (
	"sort"
	"strings"

	"freshsaver/internal/inventory/catalog"
	"freshsaver/internal/inventory/model"
)

// Уровни уверенности — часть наблюдаемого контракта, не пересчитывать.
const (
	confSKU      = 1.0
	confName     = 0.9
	confBrand    = 0.6
	confCategory = 0.4

	primaryLimit = 5
	fuzzyLimit   = 3

	fuzzyFloor     = 0.2
	fuzzyThreshold = 0.3
	lengthPenalty  = 0.02
)

// Service — все операции поиска/оценки поверх одного неизменяемого каталога.
// Методы чистые и безопасны для любого числа параллельных вызовов.
type Service struct {
	cat catalog.Catalog
}

func New(cat catalog.Catalog) *Service {
	return &Service{cat: cat}
}

// Catalog возвращает все позиции в исходном порядке.
func (s *Service) Catalog() []model.InventoryItem { return s.cat.Items() }

// MatchItems — основной матчер. Один проход по каталогу; для каждой позиции
// критерии проверяются строго по приоритету, первый сработавший закрывает
// позицию (одна позиция — максимум один результат):
//
//	sku точно (1.0) → name подстрока в обе стороны (0.9) →
//	brand подстрока (0.6) → category подстрока (0.4)
//
// Если основной проход пуст и задано имя — нечёткий fallback по токенам.
func (s *Service) MatchItems(q model.MatchQuery) []model.MatchResult {
	sku := normalize(q.SKU)
	name := normalize(q.Name)
	brand := normalize(q.Brand)
	category := normalize(q.Category)

	items := s.cat.Items()
	res := make([]model.MatchResult, 0, primaryLimit)
	for i := range items {
		it := &items[i]
		switch {
		case sku != "" && normalize(it.SKU) == sku:
			res = append(res, model.MatchResult{Item: it, MatchConfidence: confSKU, MatchedBy: model.MatchedBySKU})
		case name != "" && nameOverlaps(normalize(it.Name), name):
			res = append(res, model.MatchResult{Item: it, MatchConfidence: confName, MatchedBy: model.MatchedByName})
		case brand != "" && strings.Contains(normalize(it.Brand), brand):
			res = append(res, model.MatchResult{Item: it, MatchConfidence: confBrand, MatchedBy: model.MatchedByBrand})
		case category != "" && strings.Contains(normalize(it.Category), category):
			res = append(res, model.MatchResult{Item: it, MatchConfidence: confCategory, MatchedBy: model.MatchedByCategory})
		}
	}

	if len(res) == 0 && name != "" {
		return s.fuzzyByName(name)
	}

	// стабильная сортировка: при равной уверенности сохраняется порядок каталога
	sort.SliceStable(res, func(i, j int) bool { return res[i].MatchConfidence > res[j].MatchConfidence })
	if len(res) > primaryLimit {
		res = res[:primaryLimit]
	}
	return res
}

// «молоко амул» ⊂ «амул молоко 500мл» и наоборот
func nameOverlaps(itemName, queryName string) bool {
	return strings.Contains(itemName, queryName) || strings.Contains(queryName, itemName)
}

// fuzzyByName — грубый резервный поиск для свободного текста и опечаток.
// overlap: сколько токенов имени позиции встречается подстрокой в строке
// запроса; штраф за разницу длин. Порог > 0.3 строгий, максимум 3 результата.
func (s *Service) fuzzyByName(queryName string) []model.MatchResult {
	items := s.cat.Items()
	out := make([]model.MatchResult, 0, fuzzyLimit)
	for i := range items {
		it := &items[i]
		itemName := normalize(it.Name)
		tokens := strings.Fields(itemName)

		overlap := 0
		for _, t := range tokens {
			if strings.Contains(queryName, t) {
				overlap++
			}
		}

		lengthDiff := len([]rune(itemName)) - len([]rune(queryName))
		if lengthDiff < 0 {
			lengthDiff = -lengthDiff
		}

		denom := len(tokens)
		if denom < 1 {
			denom = 1
		}
		conf := float64(overlap)/float64(denom) - float64(lengthDiff)*lengthPenalty
		if conf < fuzzyFloor {
			conf = fuzzyFloor
		}
		if conf <= fuzzyThreshold {
			continue
		}
		out = append(out, model.MatchResult{Item: it, MatchConfidence: conf, MatchedBy: model.MatchedByName})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchConfidence > out[j].MatchConfidence })
	if len(out) > fuzzyLimit {
		out = out[:fuzzyLimit]
	}
	return out
}
