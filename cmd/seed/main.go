// Command seed opens the database, creates the default categories and stores
// the predefined item templates, then exits. Safe to run repeatedly.
package main

import (
	"context"
	"os"
	"time"

	"github.com/TenochLab/mochila-85/internal/config"
	"github.com/TenochLab/mochila-85/internal/infra"
	"github.com/TenochLab/mochila-85/internal/repository"
	"github.com/TenochLab/mochila-85/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db := infra.NewDatabase(cfg.DatabaseURL)
	if err := db.Abrir(); err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Cerrar()

	categoriaSvc := service.NewCategoriaService(repository.NewCategoriaRepository(db))
	itemSvc := service.NewItemService(repository.NewItemRepository(db), categoriaSvc)

	ctx := context.Background()
	if err := categoriaSvc.InicializarPredeterminadas(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}
	if err := itemSvc.InicializarPredeterminados(ctx, ""); err != nil {
		log.Fatal().Err(err).Msg("failed to seed predefined items")
	}

	cats, err := categoriaSvc.Listar(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list categories")
	}
	log.Info().Int("categorias", len(cats)).Msg("seed completed")
}
