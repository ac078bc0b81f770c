// Package ledger is the append-only, order-preserving report store.
package ledger

import (
	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// Ledger holds the ordered report sequence and the used-reportId set. A
// report's index never changes once assigned and reports are never removed.
// Synchronization is owned by the aggregate.
type Ledger struct {
	reports []*models.Report
	usedIDs map[id.ReportID]struct{}
}

func New() *Ledger {
	return &Ledger{usedIDs: make(map[id.ReportID]struct{})}
}

// RequireFreshID rejects a reportId that is already on the ledger. Checked
// before any mutation so a duplicate submission leaves all state unchanged.
func (l *Ledger) RequireFreshID(reportID id.ReportID) error {
	if _, used := l.usedIDs[reportID]; used {
		return dErrors.New(dErrors.CodeDuplicateReportID, "report id already used")
	}
	return nil
}

// NextIndex is the stable index the next appended report will receive.
func (l *Ledger) NextIndex() int64 {
	return int64(len(l.reports))
}

// Append adds a fully validated report, assigns its index, and marks the
// reportId used. The caller must have cleared RequireFreshID first.
func (l *Ledger) Append(r *models.Report) int64 {
	r.Index = l.NextIndex()
	l.reports = append(l.reports, r)
	l.usedIDs[r.ReportID] = struct{}{}
	return r.Index
}

// Get returns the live report at index.
func (l *Ledger) Get(index int64) (*models.Report, error) {
	if index < 0 || index >= int64(len(l.reports)) {
		return nil, dErrors.New(dErrors.CodeInvalidIndex, "report index out of range")
	}
	return l.reports[index], nil
}

// Len reports the ledger length.
func (l *Ledger) Len() int64 {
	return int64(len(l.reports))
}

// Reports exposes the ordered sequence for scans. Callers must not mutate.
func (l *Ledger) Reports() []*models.Report {
	return l.reports
}

// Restore replaces ledger contents during recovery. Reports must arrive in
// insertion order; indices and the used-id set are rebuilt so a recovered
// instance answers queries identically to one that never restarted.
func (l *Ledger) Restore(reports []models.Report) error {
	l.reports = make([]*models.Report, 0, len(reports))
	l.usedIDs = make(map[id.ReportID]struct{}, len(reports))
	for i := range reports {
		copied := reports[i]
		if _, dup := l.usedIDs[copied.ReportID]; dup {
			return dErrors.New(dErrors.CodeInternal, "persisted ledger contains duplicate report id")
		}
		copied.Index = int64(i)
		l.reports = append(l.reports, &copied)
		l.usedIDs[copied.ReportID] = struct{}{}
	}
	return nil
}
