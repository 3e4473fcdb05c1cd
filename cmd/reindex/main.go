package main

import (
	"context"
	"log"

	"medisos-be/internal/bootstrap"
	"medisos-be/internal/config"
	"medisos-be/pkg/database"

	"github.com/fatih/color"
)

// Rebuilds the knowledge passage index from the configured slide deck.
// Useful after swapping the deck without bouncing the API server.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	color.Cyan("Reindexing slide deck: %s", cfg.Knowledge.SlideDeckPath)

	res, err := container.KnowledgeService.Reindex(context.Background())
	if err != nil {
		color.Red("Reindex failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✅ Indexed %d passages", res.Indexed)
}
