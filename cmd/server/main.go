package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"avatarhub/docs"
	"avatarhub/internal/cache"
	"avatarhub/internal/config"
	"avatarhub/internal/dashboard"
	"avatarhub/internal/handler"
	"avatarhub/internal/logger"
	"avatarhub/internal/render"
	"avatarhub/internal/repository"
	"avatarhub/internal/router"
	"avatarhub/internal/seed"
	"avatarhub/internal/service"
	"avatarhub/internal/session"
)

// @title Avatar Dashboard API
// @version 1.0
// @description JSON access to the session-scoped avatar dashboard: listing, pagination, create and edit.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	records, err := seed.Load(cfg.SeedPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load seed")
	}
	logger.Info().Int("avatars", len(records)).Str("seed_path", cfg.SeedPath).Msg("seed loaded")

	renderer, err := render.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("templates")
	}

	imageService := service.NewImageService(cache.New(), cfg.MaxUploadBytes)
	sessions := session.NewRegistry(func() *dashboard.Dashboard {
		repo := repository.NewAvatarRepository(records, time.Now)
		return dashboard.New(service.NewAvatarService(repo), cfg.PageSize)
	}, session.Options{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
		OnExpire: func(s *session.Session) {
			imageService.Release(context.Background(), s.Images()...)
		},
	})

	dashboardHandler := handler.NewDashboardHandler(imageService, cfg.MaxUploadBytes)
	avatarHandler := handler.NewAvatarHandler(imageService, cfg.MaxUploadBytes)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.RequestID())

	router.Register(e, sessions, cfg.MaxUploadBytes, dashboardHandler, avatarHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	logger.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("swagger documentation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info().Str("addr", addr).Msg("dashboard listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}
