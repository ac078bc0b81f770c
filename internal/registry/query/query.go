// Package query serves the read-only views over the ledger and directory.
package query

import (
	"fraudregistry/internal/registry/directory"
	"fraudregistry/internal/registry/ledger"
	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// Pagination bounds shared by every listing query.
const (
	MinLimit = 1
	MaxLimit = 100
)

// Index answers paginated, filtered, and statistical queries. The platform
// count map is the only derived state it maintains; everything else is
// computed by scanning the ledger at call time so results can never drift
// from the source of truth.
type Index struct {
	ledger         *ledger.Ledger
	directory      *directory.Directory
	platformCounts map[string]int64
}

func New(l *ledger.Ledger, d *directory.Directory) *Index {
	return &Index{
		ledger:         l,
		directory:      d,
		platformCounts: make(map[string]int64),
	}
}

// RecordSubmission updates the platform count for an accepted report.
func (q *Index) RecordSubmission(platform string) {
	q.platformCounts[platform]++
}

// Restore rebuilds the platform counts from a recovered ledger.
func (q *Index) Restore() {
	q.platformCounts = make(map[string]int64)
	for _, r := range q.ledger.Reports() {
		q.platformCounts[r.Platform]++
	}
}

func validateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return dErrors.New(dErrors.CodeInvalidLimit, "limit must be between 1 and 100")
	}
	return nil
}

// ReportsByPlatform scans in ascending index order, selecting exact platform
// matches, skipping the first offset matches, and collecting up to limit
// indices. An offset beyond the match count yields an empty result, not an
// error.
func (q *Index) ReportsByPlatform(platform string, offset, limit int) ([]int64, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "offset must not be negative")
	}

	indices := make([]int64, 0, limit)
	skipped := 0
	for _, r := range q.ledger.Reports() {
		if r.Platform != platform {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		indices = append(indices, r.Index)
		if len(indices) == limit {
			break
		}
	}
	return indices, nil
}

// HighRiskReports scans in descending index order (most recent first) and
// collects up to limit indices at or above the high-risk threshold.
func (q *Index) HighRiskReports(limit int) ([]int64, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	reports := q.ledger.Reports()
	indices := make([]int64, 0, limit)
	for i := len(reports) - 1; i >= 0; i-- {
		if reports[i].RiskScore < models.HighRiskThreshold {
			continue
		}
		indices = append(indices, reports[i].Index)
		if len(indices) == limit {
			break
		}
	}
	return indices, nil
}

// Statistics computes every count with a full scan at call time; it always
// equals what an independent scan of the ledger would produce.
func (q *Index) Statistics() models.Statistics {
	var stats models.Statistics
	for _, r := range q.ledger.Reports() {
		stats.Total++
		if r.Verified {
			stats.Verified++
		}
		if r.RiskScore >= models.HighRiskThreshold {
			stats.HighRisk++
		}
		if r.ActionTaken {
			stats.ActionTaken++
		}
	}
	return stats
}

// PlatformCount is a direct lookup; never-seen platforms count zero.
func (q *Index) PlatformCount(platform string) int64 {
	return q.platformCounts[platform]
}

// TotalReports is the ledger length.
func (q *Index) TotalReports() int64 {
	return q.ledger.Len()
}

// AgencyInfo returns the agency record, or an empty default for unknown
// identities.
func (q *Index) AgencyInfo(agencyID id.AgencyID) models.Agency {
	a, _ := q.directory.Snapshot(agencyID)
	return a
}
