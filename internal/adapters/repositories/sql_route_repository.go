package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"relief-route-service/internal/domain"
	"relief-route-service/internal/platform/obs"
	"relief-route-service/internal/ports"
)

// SQLRouteRepository is the Postgres dual of SqliteRouteRepository, used
// when plans are archived to a shared database (see cmd/dbtool).
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// Initialize the Postgres routes schema.
func InitArchiveSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init archive schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS routes (
		id BIGSERIAL PRIMARY KEY,
		created_at BIGINT NOT NULL,
		batch_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		depot_lat DOUBLE PRECISION NOT NULL,
		depot_lon DOUBLE PRECISION NOT NULL,
		stops_json TEXT NOT NULL,
		total_distance_km DOUBLE PRECISION,
		estimated_time_minutes DOUBLE PRECISION,
		urgent_requests_served INTEGER,
		metadata_json TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_routes_created ON routes(created_at DESC);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init archive schema: exec: %w", err)
	}

	return nil
}

// Persist all plans of one generation batch and return them with ids.
func (s *SQLRouteRepository) SaveAll(ctx context.Context, batchID string, plans []domain.RoutePlan) (_ []ports.StoredRoutePlan, err error) {
	defer obs.Time(ctx, "routes.archive.SaveAll")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}
	if batchID == "" {
		return nil, errors.New("archive routes: batch id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("archive routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO routes (
		created_at, batch_id, mode, depot_lat, depot_lon, stops_json,
		total_distance_km, estimated_time_minutes,
		urgent_requests_served, metadata_json
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("archive routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	stored := make([]ports.StoredRoutePlan, 0, len(plans))
	for _, plan := range plans {
		stopsJSON, err := json.Marshal(plan.Stops)
		if err != nil {
			return nil, fmt.Errorf("archive routes: marshal stops for mode %q: %w", plan.Mode, err)
		}
		metaJSON, err := json.Marshal(plan.Metadata)
		if err != nil {
			return nil, fmt.Errorf("archive routes: marshal metadata for mode %q: %w", plan.Mode, err)
		}

		var id int
		if err := stmt.QueryRowContext(ctx,
			now, batchID, string(plan.Mode), plan.DepotLat, plan.DepotLon, string(stopsJSON),
			plan.TotalDistanceKm, plan.EstimatedTimeMinutes,
			plan.UrgentRequestsServed, string(metaJSON),
		).Scan(&id); err != nil {
			return nil, fmt.Errorf("archive routes: insert mode %q: %w", plan.Mode, err)
		}

		stored = append(stored, ports.StoredRoutePlan{
			ID:        id,
			BatchID:   batchID,
			CreatedAt: now,
			Plan:      plan,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("archive routes: commit tx: %w", err)
	}

	return stored, nil
}

// Return recently archived plans, newest first.
func (s *SQLRouteRepository) ListRecent(ctx context.Context, limit int) ([]ports.StoredRoutePlan, error) {
	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
	}

	query := `
	SELECT id, created_at, batch_id, mode, depot_lat, depot_lon, stops_json,
	       total_distance_km, estimated_time_minutes,
	       urgent_requests_served, metadata_json
	FROM routes
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list archived routes: query routes table: %w", err)
	}
	defer rows.Close()

	stored := make([]ports.StoredRoutePlan, 0, limit)
	for rows.Next() {
		sp, err := scanStoredRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("list archived routes: %w", err)
		}
		stored = append(stored, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list archived routes: row iteration: %w", err)
	}

	return stored, nil
}
