package models

import (
	"time"

	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// MaxAgencyNameLen bounds the display name.
const MaxAgencyNameLen = 128

// Agency is one registered reporting agency.
//
// Counters only move forward and are mutated exclusively by the submit and
// verification paths, never by callers directly. Re-registration preserves
// them; history is never discarded.
type Agency struct {
	ID              id.AgencyID `json:"id"`
	Name            string      `json:"name"`
	Authorized      bool        `json:"authorized"`
	TotalReports    int64       `json:"total_reports"`
	VerifiedReports int64       `json:"verified_reports"`
	RegisteredAt    time.Time   `json:"registered_at"`

	// APIKeyHash is the bcrypt hash of the agency's current API key. Never
	// serialized to clients.
	APIKeyHash []byte `json:"-"`
}

// NewAgency validates registration input and builds an authorized agency with
// zeroed counters.
func NewAgency(agencyID id.AgencyID, name string, now time.Time) (*Agency, error) {
	if agencyID.IsZero() {
		return nil, dErrors.New(dErrors.CodeEmptyField, "agency id must not be empty")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeEmptyField, "agency name must not be empty")
	}
	if len(name) > MaxAgencyNameLen {
		return nil, dErrors.New(dErrors.CodeEmptyField, "agency name exceeds maximum length")
	}
	return &Agency{
		ID:           agencyID,
		Name:         name,
		Authorized:   true,
		RegisteredAt: now,
	}, nil
}
