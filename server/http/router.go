package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"freshsaver/internal/config"
	invHnd "freshsaver/internal/inventory/handler"
	invSvc "freshsaver/internal/inventory/service"
	"freshsaver/internal/middleware"
	"freshsaver/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, svc *invSvc.Service) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// health-check
	r.Get("/health", handlers.Health)

	// операции движка
	r.Get("/catalog", invHnd.ListCatalog(svc, logger))
	r.Post("/match", invHnd.Match(svc, logger))
	r.Post("/estimate-loss", invHnd.EstimateLoss(svc, logger))
	r.Get("/expiring", invHnd.Expiring(svc, logger))
	r.Get("/resolve", invHnd.Resolve(svc, logger))

	return r
}
