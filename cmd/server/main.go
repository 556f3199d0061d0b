package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"relief-route-service/internal/adapters/repositories"
	"relief-route-service/internal/api"
	"relief-route-service/internal/api/handlers"
	"relief-route-service/internal/config"
	"relief-route-service/internal/domain"
	"relief-route-service/internal/events"
	"relief-route-service/internal/platform/db"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromJSON(sqlDB, cfg.SeedPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal(err)
		}
		log.Printf("no seed file at %s, starting empty", cfg.SeedPath)
	}

	// Plan notifications go to Redis when configured, otherwise nowhere.
	var pub events.Publisher = events.NoopPublisher{}
	if cfg.RedisURL != "" {
		rp, err := events.NewRedisPublisher(cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, plan notifications disabled: %v", err)
		} else {
			defer rp.Close()
			pub = rp
		}
	}

	msgRepo := repositories.NewSqliteMessageRepository(sqlDB)
	routeRepo := repositories.NewSqliteRouteRepository(sqlDB)

	defaults := handlers.RouteDefaults{
		Depot:           domain.Location{Lat: cfg.Depot.Lat, Lon: cfg.Depot.Lon},
		VehicleCapacity: cfg.VehicleCapacity,
		SinceHours:      cfg.SinceHours,
		UrgencyWeight:   cfg.UrgencyWeight,
		DistanceWeight:  cfg.DistanceWeight,
	}

	router := api.NewRouter(msgRepo, routeRepo, pub, defaults)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
