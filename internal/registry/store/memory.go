package store

import (
	"context"
	"sync"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

// MemoryStore keeps the default deployment dependency-free and gives tests a
// real Store. It favors clarity over performance.
type MemoryStore struct {
	mu       sync.RWMutex
	reports  []models.Report
	agencies map[id.AgencyID]models.Agency
	owner    id.AgencyID
	paused   bool
}

func NewMemory() *MemoryStore {
	return &MemoryStore{agencies: make(map[id.AgencyID]models.Agency)}
}

func (s *MemoryStore) AppendReport(_ context.Context, report models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if report.Index != int64(len(s.reports)) {
		return dErrors.New(dErrors.CodeInternal, "report index does not extend the persisted sequence")
	}
	s.reports = append(s.reports, report)
	return nil
}

func (s *MemoryStore) UpdateReportStatus(_ context.Context, index int64, verified, actionTaken bool, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= int64(len(s.reports)) {
		return dErrors.New(dErrors.CodeInternal, "persisted report index out of range")
	}
	s.reports[index].Verified = verified
	s.reports[index].ActionTaken = actionTaken
	s.reports[index].Action = action
	return nil
}

func (s *MemoryStore) UpsertAgency(_ context.Context, agency models.Agency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agencies[agency.ID] = agency
	return nil
}

func (s *MemoryStore) SaveControl(_ context.Context, owner id.AgencyID, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner = owner
	s.paused = paused
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := &State{
		Reports:  append([]models.Report{}, s.reports...),
		Agencies: make([]models.Agency, 0, len(s.agencies)),
		Owner:    s.owner,
		Paused:   s.paused,
	}
	for _, a := range s.agencies {
		state.Agencies = append(state.Agencies, a)
	}
	return state, nil
}
