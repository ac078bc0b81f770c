// Package verification enforces the per-report state machine:
// Unverified -> Verified -> ActionTaken, strictly forward. Verified has two
// triggers (auto-verification at submit time, or a peer agency's explicit
// verify); ActionTaken has one. No transition ever reverses.
package verification

import (
	"fraudregistry/internal/registry/directory"
	"fraudregistry/internal/registry/ledger"
	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
)

// Engine validates transitions in a stage step and applies them in a commit
// step, so the service can persist the staged state before mutating anything
// in memory. A failed persist then leaves the aggregate untouched.
type Engine struct {
	ledger    *ledger.Ledger
	directory *directory.Directory
}

func New(l *ledger.Ledger, d *directory.Directory) *Engine {
	return &Engine{ledger: l, directory: d}
}

// AutoVerifyOnSubmit applies the auto-verification rule to a report that has
// passed submission validation but is not yet appended. Returns true when the
// report was verified. The caller stages the reporter's counter bump.
func (e *Engine) AutoVerifyOnSubmit(r *models.Report) bool {
	if r.RiskScore < models.AutoVerifyThreshold {
		return false
	}
	r.ApplyVerification()
	return true
}

// VerifyStage carries the post-transition copies for persistence. Nothing in
// the live aggregate has changed until CommitVerify.
type VerifyStage struct {
	Report   models.Report
	Reporter models.Agency
}

// StageVerify validates the peer-verification preconditions for the report at
// index and returns the staged outcome.
func (e *Engine) StageVerify(caller id.AgencyID, index int64) (*VerifyStage, error) {
	report, err := e.ledger.Get(index)
	if err != nil {
		return nil, err
	}
	if err := report.CanVerify(caller); err != nil {
		return nil, err
	}

	staged := *report
	staged.ApplyVerification()

	// The original reporter's verified counter moves regardless of who
	// verified; unknown reporters keep a zero-value record out of the stage.
	reporter, _ := e.directory.Snapshot(report.ReporterID)
	reporter.VerifiedReports++

	return &VerifyStage{Report: staged, Reporter: reporter}, nil
}

// CommitVerify applies a staged verification to the live aggregate.
func (e *Engine) CommitVerify(stage *VerifyStage) {
	if report, err := e.ledger.Get(stage.Report.Index); err == nil {
		report.ApplyVerification()
	}
	e.directory.IncrementVerified(stage.Report.ReporterID)
}

// ActionStage carries the post-transition report copy for persistence.
type ActionStage struct {
	Report models.Report
}

// StageAction validates the remediation preconditions for the report at
// index.
func (e *Engine) StageAction(index int64, action string) (*ActionStage, error) {
	report, err := e.ledger.Get(index)
	if err != nil {
		return nil, err
	}
	if err := report.CanMarkAction(action); err != nil {
		return nil, err
	}

	staged := *report
	staged.ApplyAction(action)
	return &ActionStage{Report: staged}, nil
}

// CommitAction applies a staged remediation to the live aggregate.
func (e *Engine) CommitAction(stage *ActionStage) {
	if report, err := e.ledger.Get(stage.Report.Index); err == nil {
		report.ApplyAction(stage.Report.Action)
	}
}
