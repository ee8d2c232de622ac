package main

import (
	"PharmaCS/ai/gpt"
	"PharmaCS/impl/core"
	"PharmaCS/internal/config"
	repository "PharmaCS/internal/database"
	"PharmaCS/internal/http-server/api"
	"PharmaCS/internal/lib/logger"
	"PharmaCS/internal/lib/sl"
	"PharmaCS/internal/service/contextstore"
	"flag"
	"log/slog"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting pharmacs", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetCatalog(db)
		handler.SetOrders(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	store := contextstore.NewStore(conf, lg)
	if store != nil {
		handler.SetContextStore(store)
		lg.With(
			slog.String("host", conf.Redis.Host),
			slog.String("port", conf.Redis.Port),
		).Info("context store initialized")
	}

	ass := gpt.NewAssistant(conf, lg)
	handler.SetAssistant(ass)
	if ass.Configured() {
		lg.With(
			sl.Secret("openai_key", conf.OpenAI.ApiKey),
			slog.String("model", conf.OpenAI.Model),
		).Info("assistant initialized")
	} else {
		lg.Warn("openai key not configured, chat will answer with template replies")
	}

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}
