package api

import (
	"PharmaCS/internal/config"
	"PharmaCS/internal/http-server/handlers/chat"
	"PharmaCS/internal/http-server/handlers/errors"
	"PharmaCS/internal/http-server/handlers/health"
	"PharmaCS/internal/http-server/handlers/product"
	"PharmaCS/internal/http-server/middleware/apikey"
	"PharmaCS/internal/http-server/middleware/timeout"
	"PharmaCS/internal/lib/sl"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	chat.Core
	product.Core
	health.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(30))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.Listen.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Api-Key"},
		MaxAge:         300,
	}))
	router.Use(apikey.New(log, conf.Listen.ApiKey))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/chat", func(r chi.Router) {
			r.Post("/", chat.Handle(log, handler))
		})
		v1.Route("/products", func(r chi.Router) {
			r.Post("/search", product.Search(log, handler))
		})
		v1.Get("/health", health.Handle(log, handler))
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
