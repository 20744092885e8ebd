package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions/cookie"

	config "github.com/Keoroanthony/bakery-ledger/configs"
	"github.com/Keoroanthony/bakery-ledger/internal/db"
	"github.com/Keoroanthony/bakery-ledger/internal/handlers"
	"github.com/Keoroanthony/bakery-ledger/internal/ledger"
	"github.com/Keoroanthony/bakery-ledger/internal/models"
	"github.com/Keoroanthony/bakery-ledger/internal/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	orders := ledger.New(gdb)

	seeded, err := orders.SeedCatalog(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed product catalog: %v", err)
	}
	if seeded > 0 {
		log.Printf("Seeded %d catalog products", seeded)
	}

	h := handlers.New(
		orders,
		notifier.NewAfricasTalking(cfg.SMS),
		models.DeliveryDate(cfg.Ledger.DefaultDeliveryDate),
	)

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r := handlers.NewRouter(h, store)

	log.Printf("Server is starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
