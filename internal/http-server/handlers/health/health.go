package health

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Core interface {
	Backends() (model, catalog, contextStore bool)
}

type Status struct {
	Status       string `json:"status"`
	Model        bool   `json:"model"`
	Catalog      bool   `json:"catalog"`
	ContextStore bool   `json:"context_store"`
}

// Handle reports liveness and which backends are wired. The service stays
// "ok" even with backends down, matching its degrade-everywhere policy.
func Handle(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		model, catalog, store := handler.Backends()
		render.JSON(w, r, Status{
			Status:       "ok",
			Model:        model,
			Catalog:      catalog,
			ContextStore: store,
		})
	}
}
