package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"salarydash/adapters/dataload"
	"salarydash/adapters/postgres"
	"salarydash/domain/salary"
	"salarydash/internal/config"
	"salarydash/ports"
	"salarydash/ui"
)

func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var views ports.ViewRepository
	var datasets ports.DatasetRepository
	if cfg.Database.URL != "" {
		db, err := connectDatabase(cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		views = postgres.NewViewRepository(db)
		datasets = postgres.NewDatasetRepository(db)
	}

	records, err := loadDataset(cfg, datasets)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	server, err := ui.NewServer(cfg, salary.NewDataset(records), views)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	if err := server.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func connectDatabase(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// loadDataset reads records from the configured file, mirroring them into
// Postgres when configured. If the file is absent but a database holds a
// previously loaded dataset, the server hydrates from there instead.
func loadDataset(cfg *config.Config, datasets ports.DatasetRepository) ([]salary.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := os.Stat(cfg.Data.File); err == nil {
		result, err := dataload.NewReader(cfg.Data.File).Read()
		if err != nil {
			return nil, err
		}
		if datasets != nil {
			if err := datasets.ReplaceAll(ctx, result.Records); err != nil {
				log.Printf("Warning: failed to mirror dataset to database: %v", err)
			}
		}
		return result.Records, nil
	}

	if datasets != nil {
		log.Printf("Dataset file %s not found, hydrating from database", cfg.Data.File)
		return datasets.LoadAll(ctx)
	}
	result, err := dataload.NewReader(cfg.Data.File).Read()
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}
