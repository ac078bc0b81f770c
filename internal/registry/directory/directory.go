// Package directory holds the registered-agency records and gates
// agency-only operations.
package directory

import (
	"sort"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// Directory maps agency identity to its record. Like the other registry
// components it relies on the aggregate's single-writer discipline instead of
// locking internally.
type Directory struct {
	agencies map[id.AgencyID]*models.Agency
}

func New() *Directory {
	return &Directory{agencies: make(map[id.AgencyID]*models.Agency)}
}

// Snapshot returns a copy of the agency record, or false for unknown ids.
func (d *Directory) Snapshot(agencyID id.AgencyID) (models.Agency, bool) {
	if a, ok := d.agencies[agencyID]; ok {
		return *a, true
	}
	return models.Agency{}, false
}

// Put stores the record, replacing any previous version. The service stages
// a copy, persists it, and only then calls Put so a failed persist leaves the
// directory untouched.
func (d *Directory) Put(a models.Agency) {
	copied := a
	d.agencies[a.ID] = &copied
}

// IsAuthorized is a pure lookup; unknown identities are unauthorized.
func (d *Directory) IsAuthorized(agencyID id.AgencyID) bool {
	a, ok := d.agencies[agencyID]
	return ok && a.Authorized
}

// RequireAuthorized rejects callers that are not registered authorized
// agencies.
func (d *Directory) RequireAuthorized(agencyID id.AgencyID) error {
	if !d.IsAuthorized(agencyID) {
		return dErrors.New(dErrors.CodeNotAuthorized, "caller is not an authorized agency")
	}
	return nil
}

// IncrementTotal bumps the submission counter in place.
func (d *Directory) IncrementTotal(agencyID id.AgencyID) {
	if a, ok := d.agencies[agencyID]; ok {
		a.TotalReports++
	}
}

// IncrementVerified bumps the verified counter in place.
func (d *Directory) IncrementVerified(agencyID id.AgencyID) {
	if a, ok := d.agencies[agencyID]; ok {
		a.VerifiedReports++
	}
}

// All returns a stable-ordered copy of every record.
func (d *Directory) All() []models.Agency {
	out := make([]models.Agency, 0, len(d.agencies))
	for _, a := range d.agencies {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restore replaces the directory contents during recovery.
func (d *Directory) Restore(agencies []models.Agency) {
	d.agencies = make(map[id.AgencyID]*models.Agency, len(agencies))
	for _, a := range agencies {
		copied := a
		d.agencies[a.ID] = &copied
	}
}
