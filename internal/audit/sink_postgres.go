package audit

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresSink keeps a durable audit trail next to the registry state. It is
// append-only; rows are never updated or deleted.
type PostgresSink struct {
	db *sql.DB
}

// OpenPostgresSink connects with the pq driver and ensures the table.
func OpenPostgresSink(ctx context.Context, dsn string) (*PostgresSink, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping audit postgres: %w", err)
	}
	s := &PostgresSink{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresSink wraps an existing pool.
func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

// EnsureSchema creates the audit table when it does not exist.
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	return s.ensureSchema(ctx)
}

func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS registry_audit_events (
    id           TEXT PRIMARY KEY,
    event_type   TEXT NOT NULL,
    occurred_at  TIMESTAMPTZ NOT NULL,
    agency_id    TEXT NOT NULL DEFAULT '',
    report_index BIGINT NOT NULL DEFAULT -1,
    report_id    TEXT NOT NULL DEFAULT '',
    platform     TEXT NOT NULL DEFAULT '',
    risk_score   INT NOT NULL DEFAULT 0,
    detail       TEXT NOT NULL DEFAULT '',
    client_ip    TEXT NOT NULL DEFAULT '',
    client_ua    TEXT NOT NULL DEFAULT ''
);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *PostgresSink) Append(ctx context.Context, event Event) error {
	clientUA := event.Client.Browser
	if event.Client.OS != "" {
		clientUA = clientUA + " on " + event.Client.OS
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_audit_events
			(id, event_type, occurred_at, agency_id, report_index, report_id,
			 platform, risk_score, detail, client_ip, client_ua)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		event.ID, string(event.Type), event.Timestamp, event.AgencyID,
		event.ReportIndex, event.ReportID, event.Platform, event.RiskScore,
		event.Detail, event.Client.IP, clientUA,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// Close releases the underlying pool.
func (s *PostgresSink) Close() error {
	return s.db.Close()
}
