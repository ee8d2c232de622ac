package chat

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// Handle is the single chat endpoint. A malformed body or empty message is
// the only hard failure; everything downstream degrades inside the core and
// still comes back as a normal reply.
func Handle(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("chat not available")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Chat not available"))
			return
		}

		var req entity.ChatTurn
		if err := render.Bind(r, &req); err != nil {
			logger.Error("invalid chat request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorDetailed("Invalid request body", err.Error()))
			return
		}

		logger = logger.With(slog.String("conversation_id", req.ConversationID))

		resp := handler.Chat(r.Context(), req)
		logger.Debug("chat response", slog.String("intent", string(resp.Intent)))

		render.JSON(w, r, resp)
	}
}
