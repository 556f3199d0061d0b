// Command dbtool maintains the shared Postgres route archive: it creates
// the schema and copies recently generated plans out of the local SQLite
// database so other tooling can read them without touching the server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"relief-route-service/internal/adapters/repositories"
	"relief-route-service/internal/config"
	"relief-route-service/internal/domain"
	"relief-route-service/internal/platform/db"
	"relief-route-service/internal/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.OpenPostgres(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing archive schema...")
	if err := repositories.InitArchiveSchema(pg); err != nil {
		log.Fatalf("archive schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	localPath := config.Get("DB_PATH", "data/app.db")
	if _, err := os.Stat(localPath); err != nil {
		log.Printf("no local database at %s, nothing to archive", localPath)
		return
	}

	local, err := db.OpenSQLite(localPath)
	if err != nil {
		log.Fatal(err)
	}
	defer local.Close()

	src := repositories.NewSqliteRouteRepository(local)
	dst := repositories.NewSQLRouteRepository(pg)
	if err := archiveRecent(context.Background(), src, dst); err != nil {
		log.Fatalf("archiving failed: %v", err)
	}
}

// archiveRecent copies the most recent plans from the local store into the
// archive, one SaveAll per batch so batch ids stay grouped on the Postgres side.
func archiveRecent(ctx context.Context, src ports.RouteRepository, dst ports.RouteRepository) error {
	stored, err := src.ListRecent(ctx, 50)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		log.Println("no stored plans to archive")
		return nil
	}

	batchOrder := make([]string, 0, len(stored))
	batches := make(map[string][]ports.StoredRoutePlan)
	for _, s := range stored {
		if _, ok := batches[s.BatchID]; !ok {
			batchOrder = append(batchOrder, s.BatchID)
		}
		batches[s.BatchID] = append(batches[s.BatchID], s)
	}

	plans := 0
	for _, batchID := range batchOrder {
		group := batches[batchID]
		toSave := make([]domain.RoutePlan, 0, len(group))
		for _, s := range group {
			toSave = append(toSave, s.Plan)
		}
		if _, err := dst.SaveAll(ctx, batchID, toSave); err != nil {
			return fmt.Errorf("archive batch %s: %w", batchID, err)
		}
		plans += len(toSave)
	}

	log.Printf("archived %d plans across %d batches", plans, len(batchOrder))
	return nil
}
