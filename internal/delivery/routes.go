package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	// --- probes ---
	r.Get("/", h.Health)
	r.Get("/healthz", h.Health)

	// --- API ---
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(60, time.Minute),
		)

		pr.Post("/translate", h.Translate)

		pr.Get("/dictionary/stats", h.DictionaryStats)
		pr.Post("/dictionary/words", h.AddWord)

		pr.Get("/records", h.ListRecords)
	})
}
