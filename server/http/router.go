package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"caseimport-service/internal/config"
	impHnd "caseimport-service/internal/importer/handler"
	"caseimport-service/internal/middleware"
	"caseimport-service/internal/store"
	"caseimport-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, st store.RecordStore, aliases config.Aliases) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/import/preview", impHnd.Preview(cfg, logger, st, aliases))
	r.Post("/import/cases", impHnd.Import(cfg, logger, st, aliases))
	r.Post("/import/report", impHnd.Report(logger))

	return r
}
