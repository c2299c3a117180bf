package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies the schema. Statements are idempotent so restarts are safe.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS certificates (
			certificate_number TEXT PRIMARY KEY,
			issuer_email       TEXT NOT NULL,
			particulars        TEXT NOT NULL,
			description        TEXT NOT NULL,
			signatory_name     TEXT NOT NULL,
			expiry_date        TEXT NOT NULL,
			location           TEXT NOT NULL DEFAULT '',
			creation_date      TEXT NOT NULL,
			creation_time      TEXT NOT NULL,
			device_ip          TEXT NOT NULL DEFAULT 'unknown',
			document_photo     TEXT,
			signature_photo    TEXT,
			signatory_photo    TEXT,
			digest             TEXT NOT NULL,
			transaction_ref    TEXT NOT NULL DEFAULT '',
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_certificates_issuer_email
			ON certificates (issuer_email, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS certificate_sequence (
			id    INT PRIMARY KEY CHECK (id = 1),
			value BIGINT NOT NULL
		)`,
		`INSERT INTO certificate_sequence (id, value)
			SELECT 1, COALESCE(MAX(certificate_number::BIGINT), 0) FROM certificates
			ON CONFLICT (id) DO NOTHING`,
		`CREATE TABLE IF NOT EXISTS audit_outbox (
			id           UUID PRIMARY KEY,
			event_type   TEXT NOT NULL,
			payload      JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			published_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_outbox_unpublished
			ON audit_outbox (created_at) WHERE published_at IS NULL`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
