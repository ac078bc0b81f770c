package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	_ "github.com/jackc/pgx/v5/stdlib"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
)

// PostgresStore persists registry state in PostgreSQL via the pgx stdlib
// driver. The report index is the primary key, so the insertion order the
// ledger relies on survives restarts.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects, verifies the connection, and ensures the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgres wraps an existing connection pool (integration tests own the
// pool lifecycle).
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables when they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	return s.ensureSchema(ctx)
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS registry_reports (
    index        BIGINT PRIMARY KEY,
    platform     TEXT NOT NULL,
    username     TEXT NOT NULL,
    risk_score   INT NOT NULL CHECK (risk_score BETWEEN 0 AND 100),
    evidence     TEXT NOT NULL DEFAULT '',
    report_id    TEXT NOT NULL UNIQUE,
    reporter_id  TEXT NOT NULL,
    submitted_at TIMESTAMPTZ NOT NULL,
    verified     BOOLEAN NOT NULL DEFAULT FALSE,
    action_taken BOOLEAN NOT NULL DEFAULT FALSE,
    action       TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS registry_agencies (
    id               TEXT PRIMARY KEY,
    name             TEXT NOT NULL,
    authorized       BOOLEAN NOT NULL,
    total_reports    BIGINT NOT NULL DEFAULT 0,
    verified_reports BIGINT NOT NULL DEFAULT 0,
    registered_at    TIMESTAMPTZ NOT NULL,
    api_key_hash     BYTEA
);
CREATE TABLE IF NOT EXISTS registry_control (
    singleton SMALLINT PRIMARY KEY DEFAULT 1 CHECK (singleton = 1),
    owner     TEXT NOT NULL,
    paused    BOOLEAN NOT NULL DEFAULT FALSE
);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure registry schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendReport(ctx context.Context, report models.Report) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_reports
			(index, platform, username, risk_score, evidence, report_id,
			 reporter_id, submitted_at, verified, action_taken, action)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		report.Index, report.Platform, report.Username, report.RiskScore,
		report.Evidence, report.ReportID.String(), report.ReporterID.String(),
		report.Timestamp, report.Verified, report.ActionTaken, report.Action,
	)
	if err != nil {
		return fmt.Errorf("append report: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateReportStatus(ctx context.Context, index int64, verified, actionTaken bool, action string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE registry_reports
		SET verified = $2, action_taken = $3, action = $4
		WHERE index = $1`,
		index, verified, actionTaken, action,
	)
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update report status: index %d not persisted", index)
	}
	return nil
}

func (s *PostgresStore) UpsertAgency(ctx context.Context, agency models.Agency) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_agencies
			(id, name, authorized, total_reports, verified_reports, registered_at, api_key_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			authorized = EXCLUDED.authorized,
			total_reports = EXCLUDED.total_reports,
			verified_reports = EXCLUDED.verified_reports,
			api_key_hash = EXCLUDED.api_key_hash`,
		agency.ID.String(), agency.Name, agency.Authorized,
		agency.TotalReports, agency.VerifiedReports, agency.RegisteredAt,
		agency.APIKeyHash,
	)
	if err != nil {
		return fmt.Errorf("upsert agency: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveControl(ctx context.Context, owner id.AgencyID, paused bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registry_control (singleton, owner, paused)
		VALUES (1, $1, $2)
		ON CONFLICT (singleton) DO UPDATE SET owner = EXCLUDED.owner, paused = EXCLUDED.paused`,
		owner.String(), paused,
	)
	if err != nil {
		return fmt.Errorf("save control state: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*State, error) {
	state := &State{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT index, platform, username, risk_score, evidence, report_id,
		       reporter_id, submitted_at, verified, action_taken, action
		FROM registry_reports ORDER BY index ASC`)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r models.Report
		var reportID, reporterID string
		if err := rows.Scan(&r.Index, &r.Platform, &r.Username, &r.RiskScore,
			&r.Evidence, &reportID, &reporterID, &r.Timestamp,
			&r.Verified, &r.ActionTaken, &r.Action); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		r.ReportID = id.ReportID(reportID)
		r.ReporterID = id.AgencyID(reporterID)
		state.Reports = append(state.Reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}

	agencyRows, err := s.db.QueryContext(ctx, `
		SELECT id, name, authorized, total_reports, verified_reports, registered_at, api_key_hash
		FROM registry_agencies`)
	if err != nil {
		return nil, fmt.Errorf("load agencies: %w", err)
	}
	defer agencyRows.Close()
	for agencyRows.Next() {
		var a models.Agency
		var agencyID string
		var hash []byte
		if err := agencyRows.Scan(&agencyID, &a.Name, &a.Authorized,
			&a.TotalReports, &a.VerifiedReports, &a.RegisteredAt, &hash); err != nil {
			return nil, fmt.Errorf("scan agency: %w", err)
		}
		a.ID = id.AgencyID(agencyID)
		a.APIKeyHash = hash
		state.Agencies = append(state.Agencies, a)
	}
	if err := agencyRows.Err(); err != nil {
		return nil, fmt.Errorf("load agencies: %w", err)
	}
	sort.Slice(state.Agencies, func(i, j int) bool { return state.Agencies[i].ID < state.Agencies[j].ID })

	var owner string
	err = s.db.QueryRowContext(ctx, `SELECT owner, paused FROM registry_control WHERE singleton = 1`).
		Scan(&owner, &state.Paused)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Fresh database; the service bootstraps the owner.
	case err != nil:
		return nil, fmt.Errorf("load control state: %w", err)
	default:
		state.Owner = id.AgencyID(owner)
	}

	return state, nil
}

// Close releases the underlying pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
