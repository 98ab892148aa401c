package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"guestPass/internal/config"
	"guestPass/internal/http-server/handlers/checkin/checkIn"
	"guestPass/internal/http-server/handlers/event/createEvent"
	"guestPass/internal/http-server/handlers/event/getAllEvents"
	"guestPass/internal/http-server/handlers/event/getEventInfo"
	"guestPass/internal/http-server/handlers/guest/addGuest"
	"guestPass/internal/http-server/handlers/guest/updateAllotment"
	"guestPass/internal/http-server/handlers/invite/qrImage"
	"guestPass/internal/http-server/handlers/invite/showInvite"
	"guestPass/internal/http-server/handlers/report/exportReport"
	"guestPass/internal/http-server/handlers/report/getReport"
	"guestPass/internal/http-server/handlers/rsvp/getRSVP"
	"guestPass/internal/http-server/handlers/rsvp/submitRSVP"
	"guestPass/internal/http-server/middleware/mwlogger"
	"guestPass/internal/invite"
	"guestPass/internal/lib/logger/handlers/slogpretty"
	"guestPass/internal/lib/logger/sl"
	"guestPass/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting guest pass service", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	renderer, err := invite.NewRenderer(log)
	if err != nil {
		log.Error("failed to init invitation renderer", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/events", http.StatusFound)
	})

	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))
	router.Post("/events/{id}/guests", addGuest.New(log, storage))
	router.Patch("/guests/{id}/allotment", updateAllotment.New(log, storage))
	router.Post("/events/{id}/checkin", checkIn.New(log, storage))
	router.Get("/events/{id}/report", getReport.New(log, storage))
	router.Get("/events/{id}/report.csv", exportReport.New(log, storage))

	router.Get("/invite/{code}", showInvite.New(log, storage, renderer))
	router.Get("/invite/{code}/qr.png", qrImage.New(log, storage))
	router.Get("/api/invite/{code}/rsvp", getRSVP.New(log, storage))
	router.Post("/api/invite/{code}/rsvp", submitRSVP.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
