package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"freshsaver/internal/fileio"
	"freshsaver/internal/inventory/model"
	"freshsaver/internal/utils"
)

// Load читает каталог из файла (.csv/.xlsx/.xls/.json). Невалидные записи
// отбрасываются с warn-логом до того, как попадут в движок; пустой каталог —
// фатальная ошибка старта.
func Load(path string, logger zerolog.Logger) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var items []model.InventoryItem
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var raw []model.InventoryItem
		if err := json.NewDecoder(f).Decode(&raw); err != nil {
			return Catalog{}, fmt.Errorf("decode catalog json: %w", err)
		}
		items = validate(raw, logger)
	} else {
		maps, err := fileio.ReadAnyMaps(f, path, 1)
		if err != nil {
			return Catalog{}, fmt.Errorf("read catalog table: %w", err)
		}
		items = fromMaps(maps, logger)
	}

	if len(items) == 0 {
		return Catalog{}, errors.New("catalog is empty after validation")
	}
	logger.Info().Str("file", path).Int("items", len(items)).Msg("catalog loaded")
	return New(items), nil
}

func validate(raw []model.InventoryItem, logger zerolog.Logger) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(raw))
	for i, it := range raw {
		if err := checkItem(it); err != nil {
			logger.Warn().Int("index", i).Err(err).Msg("catalog: skip record")
			continue
		}
		out = append(out, it)
	}
	return out
}

func checkItem(it model.InventoryItem) error {
	if strings.TrimSpace(it.Name) == "" && strings.TrimSpace(it.SKU) == "" {
		return errors.New("empty name and sku")
	}
	if it.UnitPrice < 0 {
		return errors.New("negative unit price")
	}
	if it.QuantityAtRisk != nil && *it.QuantityAtRisk < 0 {
		return errors.New("negative quantity at risk")
	}
	return nil
}

// колонки с альтернативными заголовками ("a|b")
const (
	colSKU        = "sku|артикул"
	colName       = "name|наименование"
	colBrand      = "brand|бренд"
	colCategory   = "category|категория"
	colUnitPrice  = "unit_price|unitprice|price|цена"
	colUnit       = "unit|ед"
	colLocation   = "location|склад"
	colShelfLife  = "shelf_life_days|shelflifedays"
	colQtyAtRisk  = "quantity_at_risk|quantityatrisk"
	colDaysExpiry = "days_until_expiry|daysuntilexpiry"
)

func fromMaps(maps []map[string]string, logger zerolog.Logger) []model.InventoryItem {
	items := make([]model.InventoryItem, 0, len(maps))
	for i, rec := range maps {
		it, err := itemFromRecord(rec)
		if err != nil {
			// i нумерует записи после шапки, +2 даёт номер строки файла
			logger.Warn().Int("row", i+2).Err(err).Msg("catalog: skip row")
			continue
		}
		items = append(items, it)
	}
	return items
}

func itemFromRecord(rec map[string]string) (model.InventoryItem, error) {
	it := model.InventoryItem{
		SKU:      cell(rec, colSKU),
		Name:     cell(rec, colName),
		Brand:    cell(rec, colBrand),
		Category: cell(rec, colCategory),
		Unit:     cell(rec, colUnit),
		Location: cell(rec, colLocation),
	}

	price, ok := utils.ParseNumber(cell(rec, colUnitPrice))
	if !ok {
		return it, errors.New("missing or unparseable unit price")
	}
	it.UnitPrice = price

	if v := cell(rec, colShelfLife); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			it.ShelfLifeDays = d
		}
	}
	if v := cell(rec, colQtyAtRisk); v != "" {
		q, ok := utils.ParseNumber(v)
		if !ok {
			return it, errors.New("unparseable quantity at risk")
		}
		it.QuantityAtRisk = &q
	}
	if v := cell(rec, colDaysExpiry); v != "" {
		d, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return it, errors.New("unparseable days until expiry")
		}
		it.DaysUntilExpiry = &d
	}

	return it, checkItem(it)
}

// cell — значение по первому подошедшему заголовку (без учёта регистра/подчёркиваний).
func cell(rec map[string]string, want string) string {
	alts := strings.Split(want, "|")
	// точное совпадение как есть
	for _, a := range alts {
		if v, ok := rec[a]; ok {
			return strings.TrimSpace(v)
		}
	}
	for k, v := range rec {
		nk := normKey(k)
		for _, a := range alts {
			if nk == normKey(a) {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

func normKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ", "_", " ", "-", " ", "ё", "е").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
