package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"carteasy/internal/catalog"
	"carteasy/internal/config"
	"carteasy/internal/database"
	"carteasy/internal/logging"
	"carteasy/internal/repository"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga el catálogo estático en MongoDB",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.MongoURI == "" {
				return errors.New("MONGO_URI is required to seed the catalog")
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()
			client, err := database.Connect(ctx, cfg.MongoURI, logger)
			if err != nil {
				return err
			}
			defer database.Disconnect(client, logger)

			repo := repository.NewMongoProductRepository(client.Database(cfg.MongoDB).Collection("products"))
			return seedCatalog(ctx, repo, logger)
		},
	}
}

func seedCatalog(ctx context.Context, repo *repository.MongoProductRepository, logger *zap.Logger) error {
	n, err := repo.Seed(ctx, catalog.Products())
	if err != nil {
		return err
	}
	logger.Info("catalog seeded", zap.Int("products", n))
	return nil
}
