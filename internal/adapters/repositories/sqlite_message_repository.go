package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"relief-route-service/internal/domain"
	"relief-route-service/internal/platform/obs"
	"relief-route-service/internal/ports"
)

// SQLite-backed implementation of the MessageRepository port.
type SqliteMessageRepository struct{ DB *sql.DB }

func NewSqliteMessageRepository(db *sql.DB) *SqliteMessageRepository {
	return &SqliteMessageRepository{DB: db}
}

// Insert a validated message and return its id.
func (s *SqliteMessageRepository) InsertMessage(ctx context.Context, msg domain.Message) (int, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite message repository: DB is nil")
	}

	var resourceType any
	if msg.ResourceType != "" {
		resourceType = msg.ResourceType
	}

	query := `
	INSERT INTO messages (
		node_id, timestamp, message_type, urgency,
		lat, lon, resource_type, quantity, payload
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		msg.NodeID, msg.Timestamp, msg.MessageType, msg.Urgency,
		msg.Lat, msg.Lon, resourceType, msg.Quantity, msg.Payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert message: exec: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert message: last insert id: %w", err)
	}

	return int(id), nil
}

// Return recent messages ordered by timestamp descending.
func (s *SqliteMessageRepository) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	query := `
	SELECT id, node_id, timestamp, message_type, urgency,
	       lat, lon, resource_type, quantity, payload
	FROM messages
	ORDER BY timestamp DESC
	LIMIT ?;
	`
	return s.queryMessages(ctx, query, limit)
}

// Return messages at or above minUrgency, most urgent and newest first.
func (s *SqliteMessageRepository) ListUrgent(ctx context.Context, minUrgency, limit int) ([]domain.Message, error) {
	query := `
	SELECT id, node_id, timestamp, message_type, urgency,
	       lat, lon, resource_type, quantity, payload
	FROM messages
	WHERE urgency >= ?
	ORDER BY urgency DESC, timestamp DESC
	LIMIT ?;
	`
	return s.queryMessages(ctx, query, minUrgency, limit)
}

// Return the latest status of every node that has reported, most recently
// seen first.
func (s *SqliteMessageRepository) NodeStatuses(ctx context.Context) ([]domain.NodeStatus, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite message repository: DB is nil")
	}

	// Latest row per node via a correlated rowid lookup, joined with
	// per-node counters.
	query := `
	SELECT m.node_id,
	       agg.last_seen,
	       agg.message_count,
	       m.message_type,
	       m.urgency,
	       m.lat,
	       m.lon
	FROM messages m
	JOIN (
		SELECT node_id, MAX(timestamp) AS last_seen, COUNT(*) AS message_count
		FROM messages
		GROUP BY node_id
	) agg ON agg.node_id = m.node_id
	WHERE m.id = (
		SELECT id FROM messages
		WHERE node_id = m.node_id
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	)
	ORDER BY agg.last_seen DESC;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("node statuses: query messages table: %w", err)
	}
	defer rows.Close()

	nodes := make([]domain.NodeStatus, 0, 16)
	for rows.Next() {
		var n domain.NodeStatus
		var msgType sql.NullString
		var urgency sql.NullInt64
		var lat, lon sql.NullFloat64

		if err := rows.Scan(&n.NodeID, &n.LastSeen, &n.MessageCount, &msgType, &urgency, &lat, &lon); err != nil {
			return nil, fmt.Errorf("node statuses: scan row: %w", err)
		}

		n.LastMessageType = msgType.String
		if urgency.Valid {
			u := int(urgency.Int64)
			n.LastUrgency = &u
		}
		if lat.Valid {
			v := lat.Float64
			n.LastLat = &v
		}
		if lon.Valid {
			v := lon.Float64
			n.LastLon = &v
		}

		nodes = append(nodes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("node statuses: row iteration: %w", err)
	}

	return nodes, nil
}

// Return demand points for the routing engine: supply requests and SOS
// messages with known coordinates inside the recency window, most urgent
// and newest first. That ordering is stable and defines the engine's
// tie-break order.
func (s *SqliteMessageRepository) ActiveDemands(ctx context.Context, sinceHours int) (_ []domain.DemandPoint, err error) {
	defer obs.Time(ctx, "messages.ActiveDemands")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite message repository: DB is nil")
	}

	cutoff := time.Now().Unix() - int64(sinceHours)*3600

	query := `
	SELECT id, node_id, timestamp, urgency, lat, lon, resource_type, quantity
	FROM messages
	WHERE message_type IN (?, ?)
	  AND timestamp >= ?
	  AND lat IS NOT NULL
	  AND lon IS NOT NULL
	ORDER BY urgency DESC, timestamp DESC;
	`

	rows, err := s.DB.QueryContext(ctx, query, domain.TypeSupplyRequest, domain.TypeSOS, cutoff)
	if err != nil {
		return nil, fmt.Errorf("active demands: query messages table: %w", err)
	}
	defer rows.Close()

	demands := make([]domain.DemandPoint, 0, 32)
	for rows.Next() {
		var d domain.DemandPoint
		var resourceType sql.NullString
		var quantity sql.NullInt64

		if err := rows.Scan(&d.ID, &d.NodeID, &d.Timestamp, &d.Urgency,
			&d.Location.Lat, &d.Location.Lon, &resourceType, &quantity); err != nil {
			return nil, fmt.Errorf("active demands: scan row: %w", err)
		}

		d.ResourceType = resourceType.String
		d.Quantity = int(quantity.Int64)
		if d.Quantity == 0 {
			d.Quantity = 1
		}

		demands = append(demands, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active demands: row iteration: %w", err)
	}

	return demands, nil
}

// Return store totals for health reporting.
func (s *SqliteMessageRepository) Stats(ctx context.Context) (ports.MessageStats, error) {
	var stats ports.MessageStats
	if s.DB == nil {
		return stats, errors.New("sqlite message repository: DB is nil")
	}

	query := `SELECT COUNT(*), MAX(timestamp) FROM messages;`

	var last sql.NullInt64
	if err := s.DB.QueryRowContext(ctx, query).Scan(&stats.TotalMessages, &last); err != nil {
		return stats, fmt.Errorf("message stats: query: %w", err)
	}
	if last.Valid {
		ts := last.Int64
		stats.LastMessageTimestamp = &ts
	}

	return stats, nil
}

func (s *SqliteMessageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite message repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: query messages table: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, 64)
	for rows.Next() {
		var m domain.Message
		var lat, lon sql.NullFloat64
		var resourceType, payload sql.NullString
		var quantity sql.NullInt64

		if err := rows.Scan(&m.ID, &m.NodeID, &m.Timestamp, &m.MessageType, &m.Urgency,
			&lat, &lon, &resourceType, &quantity, &payload); err != nil {
			return nil, fmt.Errorf("list messages: scan row: %w", err)
		}

		if lat.Valid {
			v := lat.Float64
			m.Lat = &v
		}
		if lon.Valid {
			v := lon.Float64
			m.Lon = &v
		}
		if quantity.Valid {
			q := int(quantity.Int64)
			m.Quantity = &q
		}
		m.ResourceType = resourceType.String
		m.Payload = payload.String

		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: row iteration: %w", err)
	}

	return messages, nil
}
