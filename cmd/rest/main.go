package main

import (
	"context"
	"log"

	"sadguru-seva-be/internal/bootstrap"
	"sadguru-seva-be/internal/config"
	"sadguru-seva-be/internal/server"
	"sadguru-seva-be/internal/tracer"
	"sadguru-seva-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (noop unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	pool := database.DefaultPool()
	pool.MaxIdleConns = cfg.Database.MaxIdleConns
	pool.MaxOpenConns = cfg.Database.MaxOpenConns
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, pool)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
