// Package store persists registry state so a restarted instance reproduces
// the exact query results of one that never went down.
package store

import (
	"context"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
)

// State is the full persisted registry state. Derived indices (platform
// counts, used-reportId set) are rebuilt deterministically from the ordered
// report sequence on load.
type State struct {
	Reports  []models.Report
	Agencies []models.Agency
	Owner    id.AgencyID
	Paused   bool
}

// Store is interface-driven so the aggregate can swap the in-memory
// implementation for PostgreSQL without rewiring business code. All writes
// happen inside the aggregate's single-writer section, so implementations
// never see concurrent mutations for the same registry.
type Store interface {
	// AppendReport persists a newly accepted report at its final index.
	AppendReport(ctx context.Context, report models.Report) error
	// UpdateReportStatus persists a forward transition of the mutable flags.
	UpdateReportStatus(ctx context.Context, index int64, verified, actionTaken bool, action string) error
	// UpsertAgency persists an agency record, replacing any previous version.
	UpsertAgency(ctx context.Context, agency models.Agency) error
	// SaveControl persists the owner identity and pause flag.
	SaveControl(ctx context.Context, owner id.AgencyID, paused bool) error
	// Load returns the complete persisted state, reports in insertion order.
	Load(ctx context.Context) (*State, error)
}
