package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenit/huella-digital/internal/config"
	"github.com/greenit/huella-digital/internal/database"
	httpHandlers "github.com/greenit/huella-digital/internal/http"
	"github.com/greenit/huella-digital/internal/service"
	"github.com/greenit/huella-digital/internal/storage"
	"github.com/greenit/huella-digital/internal/storage/memory"
	"github.com/greenit/huella-digital/internal/storage/postgres"
	redisstore "github.com/greenit/huella-digital/internal/storage/redis"
	"github.com/greenit/huella-digital/internal/web"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	setupLogger()

	store, err := openStore()
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer store.Close()

	svc := service.New(store, config.HistoryLimit())

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())

	httpHandlers.Register(app, svc)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	web.Register(app, config.PublicDir())

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	addr := config.APIAddr()
	log.Info().
		Str("addr", addr).
		Str("store", config.StoreType()).
		Msg("api listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server exit")
	}
}

func openStore() (storage.Store, error) {
	switch config.StoreType() {
	case "memory":
		return memory.New(), nil
	case "redis":
		return redisstore.New(config.RedisAddr()), nil
	default:
		db, err := database.Connect()
		if err != nil {
			return nil, err
		}
		return postgres.New(db)
	}
}

func setupLogger() {
	level, err := zerolog.ParseLevel(config.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.LogFormat() == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
}
