// Command ingest loads price records into the configured store.
//
// Usage:
//
//	ingest reference
//	ingest csv --file prices.csv
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"pricing_backend/internal/app/config"
	"pricing_backend/internal/app/di"
	"pricing_backend/internal/feature/pricing/domain/entity"
	"pricing_backend/internal/feature/pricing/seed"
	"pricing_backend/internal/feature/pricing/usecase"
	"pricing_backend/internal/shared/ratelimiter"
)

func main() {
	app := &cli.App{
		Name:  "ingest",
		Usage: "load price records into the pricing store",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 5 * time.Minute,
				Usage: "overall deadline for the load",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Value: 500,
				Usage: "records per upsert; 0 writes the whole file in one batch",
			},
			&cli.IntFlag{
				Name:  "chunks-per-second",
				Value: 0,
				Usage: "throttle upserts; 0 disables throttling",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "reference",
				Usage: "load the reference data set (product 35455, brand 1)",
				Action: func(c *cli.Context) error {
					return run(c, func() ([]entity.Price, error) { return seed.Reference(), nil })
				},
			},
			{
				Name:  "csv",
				Usage: "load records from a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "CSV with header id,brand_id,start_date,end_date,price_list,product_id,priority,price,curr",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return run(c, func() ([]entity.Price, error) {
						f, err := os.Open(c.String("file"))
						if err != nil {
							return nil, err
						}
						defer f.Close()
						return seed.ReadCSV(f)
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context, load func() ([]entity.Price, error)) error {
	prices, err := load()
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StoreBackend == config.BackendMemory {
		return fmt.Errorf("STORE_BACKEND=%s keeps no state across processes; use gorm or pgx", cfg.StoreBackend)
	}

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	store, closeStore, err := di.NewPriceStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter := ratelimiter.NewRateLimiter(c.Int("chunks-per-second"), time.Second)
	uc := usecase.NewChunkedIngestUsecase(store, c.Int("chunk-size"), limiter)
	if err := uc.Ingest(ctx, prices); err != nil {
		return err
	}
	log.Printf("ingest ok: %d records", len(prices))
	return nil
}
