package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stemlab/biobank-backend/internal/batches"
	"github.com/stemlab/biobank-backend/internal/db"
	"github.com/stemlab/biobank-backend/internal/platform/logger"
	"github.com/stemlab/biobank-backend/internal/platform/storage"
	"github.com/stemlab/biobank-backend/internal/registry"
	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s registry | batches <file>\n", os.Args[0])
		os.Exit(2)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	ctx := context.Background()

	switch os.Args[1] {
	case "registry":
		configPath := utils.GetEnv("REGISTRY_CONFIG_PATH", "config/registry.yaml", log)
		cfg, err := registry.LoadConfig(configPath, log)
		if err != nil {
			log.Fatal("Cannot load registry config", "error", err)
		}

		var store storage.FileStore
		if bucket := os.Getenv("ATTACHMENT_GCS_BUCKET_NAME"); bucket != "" {
			store, err = storage.NewGCSStore(ctx, log)
			if err != nil {
				log.Fatal("Cannot init GCS store", "error", err)
			}
		} else {
			store = storage.NewLocalStore(utils.GetEnv("ATTACHMENT_DIR", "attachments", log))
		}

		client := registry.NewClient(cfg, log)
		importer := registry.NewImporter(thePG, client, store, log)
		if err := importer.Run(ctx); err != nil {
			log.Fatal("Registry import failed", "error", err)
		}

	case "batches":
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "usage: %s batches <file>\n", os.Args[0])
			os.Exit(2)
		}

		celllineRepo := repos.NewCelllineRepo(thePG, log)
		batchRepo := repos.NewBatchRepo(thePG, log)
		importer := batches.NewImporter(thePG, celllineRepo, batchRepo, log)
		if err := importer.RunFile(ctx, os.Args[2]); err != nil {
			log.Fatal("Batch import failed", "error", err)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}
