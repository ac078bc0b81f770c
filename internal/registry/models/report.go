package models

import (
	"time"

	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

const (
	// MaxRiskScore bounds the confidence estimate; scores are percentages.
	MaxRiskScore = 100

	// AutoVerifyThreshold is the score at which a submission is verified
	// immediately. Authorized agencies are trusted to score risk, and
	// very-high-confidence reports should not wait for a second agency.
	AutoVerifyThreshold = 70

	// HighRiskThreshold selects reports for the high-risk query.
	HighRiskThreshold = 70

	// MediumRiskThreshold splits the remaining tiers for presentation.
	MediumRiskThreshold = 40
)

// Free-text fields are opaque but bounded so a single submission cannot grow
// the ledger without limit.
const (
	MaxPlatformLen = 256
	MaxUsernameLen = 256
	MaxEvidenceLen = 4096
	MaxActionLen   = 1024
)

// RiskLevel is a derived presentation tier; it is never stored.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// RiskLevelFor maps a score onto its tier.
func RiskLevelFor(score int) RiskLevel {
	switch {
	case score >= HighRiskThreshold:
		return RiskLevelHigh
	case score >= MediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Report is one suspected fake account on the ledger.
//
// Invariants:
//   - Platform, Username, RiskScore, Evidence, ReportID, Timestamp, and
//     ReporterID are immutable once the report is appended
//   - Index is the ledger position and never changes
//   - 0 <= RiskScore <= MaxRiskScore
//   - Verified and ActionTaken only transition false -> true
//   - ActionTaken implies Verified
type Report struct {
	Index       int64        `json:"index"`
	Platform    string       `json:"platform"`
	Username    string       `json:"username"`
	RiskScore   int          `json:"risk_score"`
	Evidence    string       `json:"evidence"`
	ReportID    id.ReportID  `json:"report_id"`
	Timestamp   time.Time    `json:"timestamp"`
	ReporterID  id.AgencyID  `json:"reporter_id"`
	Verified    bool         `json:"verified"`
	ActionTaken bool         `json:"action_taken"`
	Action      string       `json:"action,omitempty"`
}

// NewReport validates all submission fields and builds an unverified report.
// The index is assigned by the ledger at append time.
func NewReport(platform, username string, riskScore int, evidence string, reportID id.ReportID, reporter id.AgencyID, now time.Time) (*Report, error) {
	if platform == "" {
		return nil, dErrors.New(dErrors.CodeEmptyField, "platform must not be empty")
	}
	if username == "" {
		return nil, dErrors.New(dErrors.CodeEmptyField, "username must not be empty")
	}
	if len(platform) > MaxPlatformLen {
		return nil, dErrors.New(dErrors.CodeEmptyField, "platform exceeds maximum length")
	}
	if len(username) > MaxUsernameLen {
		return nil, dErrors.New(dErrors.CodeEmptyField, "username exceeds maximum length")
	}
	if riskScore < 0 || riskScore > MaxRiskScore {
		return nil, dErrors.New(dErrors.CodeInvalidRiskScore, "risk score must be between 0 and 100")
	}
	if len(evidence) > MaxEvidenceLen {
		return nil, dErrors.New(dErrors.CodeEmptyField, "evidence exceeds maximum length")
	}
	if reportID.IsZero() {
		return nil, dErrors.New(dErrors.CodeEmptyField, "report id must not be empty")
	}
	if reporter.IsZero() {
		return nil, dErrors.New(dErrors.CodeEmptyField, "reporter identity must not be empty")
	}
	return &Report{
		Platform:   platform,
		Username:   username,
		RiskScore:  riskScore,
		Evidence:   evidence,
		ReportID:   reportID,
		Timestamp:  now,
		ReporterID: reporter,
	}, nil
}

// RiskLevel returns the derived tier for this report.
func (r *Report) RiskLevel() RiskLevel {
	return RiskLevelFor(r.RiskScore)
}

// CanVerify checks the peer-verification transition. Self-attestation is
// rejected so a single agency cannot both report and confirm.
func (r *Report) CanVerify(caller id.AgencyID) error {
	if r.Verified {
		return dErrors.New(dErrors.CodeAlreadyVerified, "report is already verified")
	}
	if caller == r.ReporterID {
		return dErrors.New(dErrors.CodeSelfVerification, "reporter cannot verify its own report")
	}
	return nil
}

// ApplyVerification transitions the report to verified. Call CanVerify first
// on the peer path; auto-verification at submit time skips the caller checks.
func (r *Report) ApplyVerification() {
	r.Verified = true
}

// CanMarkAction checks the remediation transition.
func (r *Report) CanMarkAction(action string) error {
	if !r.Verified {
		return dErrors.New(dErrors.CodeNotVerified, "report must be verified before action is taken")
	}
	if len(action) > MaxActionLen {
		return dErrors.New(dErrors.CodeEmptyField, "action description exceeds maximum length")
	}
	return nil
}

// ApplyAction records the remediation. The description is opaque text.
func (r *Report) ApplyAction(action string) {
	r.ActionTaken = true
	r.Action = action
}

// Statistics is the aggregate counts tuple served by the stats query.
type Statistics struct {
	Total       int64 `json:"total"`
	Verified    int64 `json:"verified"`
	HighRisk    int64 `json:"high_risk"`
	ActionTaken int64 `json:"action_taken"`
}
