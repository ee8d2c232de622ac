package apikey

import (
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

const headerName = "X-Api-Key"

// New gates requests on a shared API key and logs every request. When no key
// is configured the gate is open and only the logging remains.
func New(log *slog.Logger, key string) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.apikey")
	if key == "" {
		log.With(mod).Warn("api key not configured, endpoints are open")
	} else {
		log.With(mod).Info("api key middleware initialized")
	}

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			remote := r.RemoteAddr
			// if the request is coming from a proxy, use the X-Forwarded-For header
			xRemote := r.Header.Get("X-Forwarded-For")
			if xRemote != "" {
				remote = xRemote
			}
			logger := log.With(
				mod,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", remote),
				slog.String("request_id", id),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			loggerPtr := &logger
			defer func() {
				(*loggerPtr).With(
					slog.Int("status", ww.Status()),
					slog.Int("size", ww.BytesWritten()),
					slog.Float64("duration", time.Since(t1).Seconds()),
				).Info("incoming request")
			}()

			if key != "" && r.Method != http.MethodOptions {
				got := r.Header.Get(headerName)
				if got == "" {
					*loggerPtr = (*loggerPtr).With(sl.Err(fmt.Errorf("api key header not found")))
					keyFailed(ww, r, "Api key not found")
					return
				}
				if got != key {
					*loggerPtr = (*loggerPtr).With(sl.Err(fmt.Errorf("api key mismatch")))
					keyFailed(ww, r, "Invalid api key")
					return
				}
			}

			ww.Header().Set("X-Request-ID", id)
			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}

func keyFailed(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(message))
}
