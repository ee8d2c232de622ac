package product

import (
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"encoding/json"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SearchRequest struct {
	Query string `json:"query"`
}

// Search is the storefront catalog search passthrough, same bounded search
// the chat flow uses.
func Search(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.product")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("product search not available")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Product search not available"))
			return
		}

		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorDetailed("Invalid request body", err.Error()))
			return
		}

		if req.Query == "" {
			logger.Error("no query provided")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("No query provided"))
			return
		}

		logger = logger.With(slog.String("query", req.Query))

		products, err := handler.SearchProducts(r.Context(), req.Query)
		if err != nil {
			logger.Error("product search", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Search failed"))
			return
		}
		logger.Debug("product search", slog.Int("results", len(products)))

		render.JSON(w, r, response.Ok(products))
	}
}
