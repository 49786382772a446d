package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TenochLab/mochila-85/internal/config"
	"github.com/TenochLab/mochila-85/internal/imagen"
	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/notify"
	"github.com/TenochLab/mochila-85/internal/repository"
	"github.com/TenochLab/mochila-85/internal/router"
	"github.com/TenochLab/mochila-85/internal/service"
	"github.com/TenochLab/mochila-85/internal/state"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db := infra.NewDatabase(cfg.DatabaseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reminders run on Redis when configured, otherwise on in-process timers.
	var rdb *redis.Client
	var notificador notify.Notificador
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		r := notify.NewRedis(rdb)
		r.Iniciar(ctx, time.Minute)
		notificador = r
	} else {
		notificador = notify.NewMemoria()
	}

	almacen, err := imagen.NewAlmacen(cfg.ImageStoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare image storage")
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	mochilaRepo := repository.NewMochilaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	mochilaSvc := service.NewMochilaService(mochilaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	itemSvc := service.NewItemService(itemRepo, categoriaSvc)

	estado := state.New(db, mochilaSvc, categoriaSvc, itemSvc, notificador, cfg.DiasRevisionMochila, cfg.DiasAvisoVencimiento)
	if err := estado.Inicializar(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application state")
	}

	r := router.New(cfg, router.Deps{
		DB:         db,
		Redis:      rdb,
		Estado:     estado,
		Mochilas:   mochilaSvc,
		Categorias: categoriaSvc,
		Items:      itemSvc,
		Imagenes:   almacen,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Mochila 85 backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	if err := db.Cerrar(); err != nil {
		log.Warn().Err(err).Msg("error closing database")
	}
	log.Info().Msg("server exited")
}
