package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Current schema version recorded in the schema_version table.
const schemaVersion = "1.0.0"

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createMessagesQuery := `
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		node_id TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		message_type TEXT NOT NULL,
		urgency INTEGER NOT NULL,
		lat REAL,
		lon REAL,
		resource_type TEXT,
		quantity INTEGER,
		payload TEXT,
		received_at INTEGER DEFAULT (strftime('%s', 'now'))
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at INTEGER DEFAULT (strftime('%s', 'now')),
		batch_id TEXT NOT NULL,
		mode TEXT NOT NULL,
		depot_lat REAL NOT NULL,
		depot_lon REAL NOT NULL,
		stops_json TEXT NOT NULL,
		total_distance_km REAL,
		estimated_time_minutes REAL,
		urgent_requests_served INTEGER,
		metadata_json TEXT
	);
	`

	createSchemaVersionQuery := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version TEXT PRIMARY KEY,
		applied_at INTEGER DEFAULT (strftime('%s', 'now'))
	);
	`

	indexQueries := []string{
		`CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_urgency ON messages(urgency DESC, timestamp DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_node ON messages(node_id, timestamp DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_routes_created ON routes(created_at DESC);`,
	}

	statements := append(
		[]string{createMessagesQuery, createRoutesQuery, createSchemaVersionQuery},
		indexQueries...,
	)

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT OR IGNORE INTO schema_version (version) VALUES (?);`,
		schemaVersion,
	); err != nil {
		return fmt.Errorf("init schema: record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type MessageSeed struct {
	NodeID       string   `json:"node_id"`
	Timestamp    int64    `json:"timestamp"`
	MessageType  string   `json:"message_type"`
	Urgency      int      `json:"urgency"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	ResourceType string   `json:"resource_type"`
	Quantity     *int     `json:"quantity"`
	Payload      string   `json:"payload"`
}

// Populate an empty database with demo messages from a JSON file.
// Seeding is skipped when the messages table already holds data, so local
// restarts do not duplicate the demo set. A zero seed timestamp is rebased
// to "now" to keep the demo inside the default recency window.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM messages;`).Scan(&count); err != nil {
		return fmt.Errorf("seed messages: count existing rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed messages: read %q: %w", jsonPath, err)
	}

	var data []MessageSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed messages: parse json: %w", err)
	}

	now := time.Now().Unix()
	rows := make([]MessageSeed, 0, len(data))
	for i, item := range data {
		nodeID := strings.TrimSpace(item.NodeID)
		if nodeID == "" {
			return fmt.Errorf("seed messages: item at index %d: node_id cannot be empty", i+1)
		}
		if item.Urgency < 1 || item.Urgency > 3 {
			return fmt.Errorf("seed messages: item at index %d: urgency %d out of range", i+1, item.Urgency)
		}
		if item.Timestamp == 0 {
			item.Timestamp = now
		}
		item.NodeID = nodeID
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed messages: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO messages (
		node_id, timestamp, message_type, urgency,
		lat, lon, resource_type, quantity, payload
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed messages: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range rows {
		var resourceType any
		if m.ResourceType != "" {
			resourceType = m.ResourceType
		}
		if _, err := stmt.Exec(
			m.NodeID, m.Timestamp, m.MessageType, m.Urgency,
			m.Lat, m.Lon, resourceType, m.Quantity, m.Payload,
		); err != nil {
			return fmt.Errorf("seed messages: insert node_id=%q: %w", m.NodeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed messages: commit tx: %w", err)
	}

	return nil
}
