// Package domain holds the typed identifiers shared across packages. Keeping
// them here avoids import cycles between stores, services, and transport.
package domain

// AgencyID identifies a registered agency. IDs are caller-assigned opaque
// text; nothing here depends on their shape.
type AgencyID string

func (a AgencyID) String() string { return string(a) }

// IsZero reports whether the identity is absent.
func (a AgencyID) IsZero() bool { return a == "" }

// ReportID is the caller-assigned, globally unique report identifier.
type ReportID string

func (r ReportID) String() string { return string(r) }

func (r ReportID) IsZero() bool { return r == "" }
