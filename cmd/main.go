package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"shape-detector/config"
	"shape-detector/internal/api/rest"
	"shape-detector/internal/api/telegram"
	"shape-detector/internal/container"
	"shape-detector/internal/infrastructure/logger"
	"shape-detector/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()

	log := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Env: cfg.Environment})
	if err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	// Без OpenCV сервис поднимается, но каждый прогон отвечает "backend unavailable".
	backend, err := vision.NewBackend()
	if err != nil {
		log.WithError(err).Warn("vision backend is not available")
	}

	appContainer := container.New(cfg, backend, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	if cfg.HTTPAddr != "" {
		handler := rest.NewHandler(
			appContainer.DetectionService,
			appContainer.Metrics,
			log,
			cfg.MaxUploadBytes(),
			cfg.DetectTimeout,
		)
		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           rest.NewRouter(handler),
			ReadHeaderTimeout: 10 * time.Second,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			log.WithField("addr", cfg.HTTPAddr).Info("http server is running")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("http server error")
				stop()
			}
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.DetectionService, log, cfg.DetectTimeout)
		if err != nil {
			log.WithError(err).Fatal("failed to create bot")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Info("bot is running")
			if err := bot.Run(ctx); err != nil {
				log.WithError(err).Error("bot error")
			}
		}()
	}

	wg.Wait()
	log.Info("stopped")
}
