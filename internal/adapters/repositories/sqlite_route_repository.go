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

// SQLite-backed implementation of the RouteRepository port. Stops and
// metadata are stored as JSON columns alongside the scalar metrics.
type SqliteRouteRepository struct{ DB *sql.DB }

func NewSqliteRouteRepository(db *sql.DB) *SqliteRouteRepository {
	return &SqliteRouteRepository{DB: db}
}

// Persist all plans of one generation batch and return them with ids.
func (s *SqliteRouteRepository) SaveAll(ctx context.Context, batchID string, plans []domain.RoutePlan) (_ []ports.StoredRoutePlan, err error) {
	defer obs.Time(ctx, "routes.SaveAll")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite route repository: DB is nil")
	}
	if batchID == "" {
		return nil, errors.New("save routes: batch id must not be empty")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("save routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO routes (
		created_at, batch_id, mode, depot_lat, depot_lon, stops_json,
		total_distance_km, estimated_time_minutes,
		urgent_requests_served, metadata_json
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("save routes: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	stored := make([]ports.StoredRoutePlan, 0, len(plans))
	for _, plan := range plans {
		stopsJSON, err := json.Marshal(plan.Stops)
		if err != nil {
			return nil, fmt.Errorf("save routes: marshal stops for mode %q: %w", plan.Mode, err)
		}
		metaJSON, err := json.Marshal(plan.Metadata)
		if err != nil {
			return nil, fmt.Errorf("save routes: marshal metadata for mode %q: %w", plan.Mode, err)
		}

		res, err := stmt.ExecContext(ctx,
			now, batchID, string(plan.Mode), plan.DepotLat, plan.DepotLon, string(stopsJSON),
			plan.TotalDistanceKm, plan.EstimatedTimeMinutes,
			plan.UrgentRequestsServed, string(metaJSON),
		)
		if err != nil {
			return nil, fmt.Errorf("save routes: insert mode %q: %w", plan.Mode, err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("save routes: last insert id: %w", err)
		}

		stored = append(stored, ports.StoredRoutePlan{
			ID:        int(id),
			BatchID:   batchID,
			CreatedAt: now,
			Plan:      plan,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("save routes: commit tx: %w", err)
	}

	return stored, nil
}

// Return recently generated plans, newest first.
func (s *SqliteRouteRepository) ListRecent(ctx context.Context, limit int) ([]ports.StoredRoutePlan, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite route repository: DB is nil")
	}

	query := `
	SELECT id, created_at, batch_id, mode, depot_lat, depot_lon, stops_json,
	       total_distance_km, estimated_time_minutes,
	       urgent_requests_served, metadata_json
	FROM routes
	ORDER BY created_at DESC, id DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	stored := make([]ports.StoredRoutePlan, 0, limit)
	for rows.Next() {
		sp, err := scanStoredRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		stored = append(stored, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return stored, nil
}

// scanStoredRoute decodes one routes row shared by the SQLite and Postgres
// repositories (column order must match their SELECTs).
func scanStoredRoute(rows *sql.Rows) (ports.StoredRoutePlan, error) {
	var sp ports.StoredRoutePlan
	var mode string
	var stopsJSON string
	var metaJSON sql.NullString

	if err := rows.Scan(&sp.ID, &sp.CreatedAt, &sp.BatchID, &mode,
		&sp.Plan.DepotLat, &sp.Plan.DepotLon, &stopsJSON,
		&sp.Plan.TotalDistanceKm, &sp.Plan.EstimatedTimeMinutes,
		&sp.Plan.UrgentRequestsServed, &metaJSON); err != nil {
		return sp, fmt.Errorf("scan row: %w", err)
	}

	sp.Plan.Mode = domain.RouteMode(mode)
	if err := json.Unmarshal([]byte(stopsJSON), &sp.Plan.Stops); err != nil {
		return sp, fmt.Errorf("decode stops for route id=%d: %w", sp.ID, err)
	}
	if sp.Plan.Stops == nil {
		sp.Plan.Stops = []domain.Stop{}
	}
	if metaJSON.Valid {
		if err := json.Unmarshal([]byte(metaJSON.String), &sp.Plan.Metadata); err != nil {
			return sp, fmt.Errorf("decode metadata for route id=%d: %w", sp.ID, err)
		}
	}

	return sp, nil
}
