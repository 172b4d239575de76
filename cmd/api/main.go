package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"salarydash/adapters/dataload"
	"salarydash/domain/salary"
	"salarydash/internal/config"
	"salarydash/ui"
)

// Headless JSON API server: the dashboard endpoints without the HTML
// page, for programmatic consumers.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	result, err := dataload.NewReader(cfg.Data.File).Read()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	app := ui.NewApp(cfg, salary.NewDataset(result.Records))
	addr := ":" + cfg.Server.Port
	log.Printf("API listening on %s (%d records)", addr, len(result.Records))
	if err := http.ListenAndServe(addr, app.Router()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
