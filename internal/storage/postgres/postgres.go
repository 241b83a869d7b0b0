// Package postgres stores marketplace snapshots as a single JSONB row.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/storage"
	"github.com/aaravmahajanofficial/templatehub/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

// snapshotRowID is the primary key of the one row holding the document.
const snapshotRowID = 1

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS marketplace_snapshots (
			id SMALLINT PRIMARY KEY,
			version INTEGER NOT NULL,
			document JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	loadQuery = `
		SELECT version, document
		FROM marketplace_snapshots
		WHERE id = $1
	`

	saveQuery = `
		INSERT INTO marketplace_snapshots (id, version, document, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET version = EXCLUDED.version, document = EXCLUDED.document, updated_at = NOW()
	`
)

type Engine struct {
	DB *sql.DB
}

func New(db *sql.DB) *Engine {
	return &Engine{DB: db}
}

// Open connects to Postgres through an instrumented driver and ensures the
// snapshot table exists.
func Open(ctx context.Context, cfg *config.Database) (*Engine, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	engine := New(db)

	// Test the connection to make sure DB is reachable
	if err := engine.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := engine.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Connected to Postgres snapshot store", slog.String("host", cfg.Host), slog.String("database", cfg.Name))
	return engine, nil
}

func (e *Engine) EnsureSchema(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := e.DB.ExecContext(dbCtx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return nil
}

func (e *Engine) Load(ctx context.Context) (*storage.Snapshot, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		version  int
		document []byte
	)

	err := e.DB.QueryRowContext(dbCtx, loadQuery, snapshotRowID).Scan(&version, &document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if version != storage.CurrentVersion {
		return nil, storage.ErrVersionMismatch
	}

	snap := &storage.Snapshot{}
	if err := json.Unmarshal(document, snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot document: %w", err)
	}

	return snap, nil
}

func (e *Engine) Save(ctx context.Context, snap *storage.Snapshot) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	document, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if _, err := e.DB.ExecContext(dbCtx, saveQuery, snapshotRowID, snap.Version, document); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (e *Engine) Ping(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return e.DB.PingContext(dbCtx)
}

func (e *Engine) Close() error {
	return e.DB.Close()
}
