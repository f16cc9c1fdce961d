package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"freshsaver/internal/inventory/model"
	invSvc "freshsaver/internal/inventory/service"
)

// ListCatalog — GET /catalog, весь каталог в исходном порядке.
func ListCatalog(svc *invSvc.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Catalog(), logger)
	}
}

// Match — POST /match. Пустое/отсутствующее тело = пустой запрос = пустой
// результат, это не ошибка (мягкий контракт движка).
func Match(svc *invSvc.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var q model.MatchQuery
		if !decodeBody(w, r, &q) {
			return
		}

		res := svc.MatchItems(q)
		writeJSON(w, http.StatusOK, res, logger)

		logger.Debug().
			Str("sku", q.SKU).
			Str("name", q.Name).
			Int("results", len(res)).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}

type estimateRequest struct {
	Query    string  `json:"query"`
	Quantity float64 `json:"quantity"`
}

// EstimateLoss — POST /estimate-loss. nil от движка (нет совпадения либо
// невалидные аргументы) отдаём как 404, без исключений и 5xx.
func EstimateLoss(svc *invSvc.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req estimateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		est := svc.EstimateLoss(req.Query, req.Quantity)
		if est == nil {
			writeError(w, http.StatusNotFound, "no matching item")
			return
		}
		writeJSON(w, http.StatusOK, est, logger)
	}
}

// Expiring — GET /expiring?within_days=N (по умолчанию 30).
func Expiring(svc *invSvc.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := atoi(r.URL.Query().Get("within_days"), invSvc.DefaultExpiryWindow)
		writeJSON(w, http.StatusOK, svc.ExpiringItems(days), logger)
	}
}

// Resolve — GET /resolve?q=..., одна позиция либо 404.
func Resolve(svc *invSvc.Service, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it := svc.ResolveItem(r.URL.Query().Get("q"))
		if it == nil {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeJSON(w, http.StatusOK, it, logger)
	}
}
