package main

import (
	"context"
	"log"

	"github.com/raidforge/itemcore/internal/catalog"
	"github.com/raidforge/itemcore/internal/config"
	"github.com/raidforge/itemcore/internal/inventory"
	"github.com/raidforge/itemcore/internal/logger"
	"github.com/raidforge/itemcore/internal/market"
	"github.com/raidforge/itemcore/internal/pricing"
	"github.com/raidforge/itemcore/internal/quality"
	"github.com/raidforge/itemcore/internal/validity"
)

// Loads the catalog, wires the engine, and reports a pricing/validity summary
// for every template. The surrounding game server owns any real API surface;
// this binary is a smoke check over live catalog data.
func main() {
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	initLogger(cfg)

	ctx := logger.WithTraceID(context.Background(), logger.GenerateTraceID())

	loader := catalog.NewLoader()
	catalogCfg, err := loader.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	store, priceBook, err := loader.Build(ctx, catalogCfg)
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	board := market.NewBoard()
	reporter := logger.NewReporter()

	pricingSvc := pricing.NewService(store, priceBook, board, cfg.QuoteCacheSize, cfg.QuoteCacheTTL)
	board.SetListener(pricingSvc.InvalidateQuote)
	validitySvc := validity.NewService(store, pricingSvc, nil)
	qualityEngine := quality.NewEngine(store, reporter)
	expander := inventory.NewExpander(reporter)

	summarize(ctx, store, pricingSvc, validitySvc, qualityEngine, expander)
}
