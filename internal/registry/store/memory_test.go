package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) newReport(n int) models.Report {
	r, err := models.NewReport("twitter", "bot", 50, "", id.ReportID(fmt.Sprintf("rep-%d", n)), "agency-a", time.Now())
	s.Require().NoError(err)
	r.Index = int64(n)
	return *r
}

func (s *MemoryStoreSuite) TestAppendEnforcesSequence() {
	s.Require().NoError(s.store.AppendReport(s.ctx, s.newReport(0)))
	s.Require().NoError(s.store.AppendReport(s.ctx, s.newReport(1)))

	// A gap or a replay is a bug in the caller and must be rejected.
	s.Error(s.store.AppendReport(s.ctx, s.newReport(3)))
	s.Error(s.store.AppendReport(s.ctx, s.newReport(1)))

	state, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(state.Reports, 2)
}

func (s *MemoryStoreSuite) TestUpdateReportStatus() {
	s.Require().NoError(s.store.AppendReport(s.ctx, s.newReport(0)))
	s.Require().NoError(s.store.UpdateReportStatus(s.ctx, 0, true, true, "removed"))

	state, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.True(state.Reports[0].Verified)
	s.True(state.Reports[0].ActionTaken)
	s.Equal("removed", state.Reports[0].Action)

	s.Error(s.store.UpdateReportStatus(s.ctx, 5, true, false, ""))
}

func (s *MemoryStoreSuite) TestControlAndAgencies() {
	a, err := models.NewAgency("agency-a", "A", time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.store.UpsertAgency(s.ctx, *a))
	s.Require().NoError(s.store.SaveControl(s.ctx, "owner-1", true))

	state, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("owner-1", state.Owner.String())
	s.True(state.Paused)
	s.Require().Len(state.Agencies, 1)
	s.Equal("agency-a", state.Agencies[0].ID.String())

	// Upsert replaces in place.
	a.Name = "A renamed"
	s.Require().NoError(s.store.UpsertAgency(s.ctx, *a))
	state, _ = s.store.Load(s.ctx)
	s.Require().Len(state.Agencies, 1)
	s.Equal("A renamed", state.Agencies[0].Name)
}

func (s *MemoryStoreSuite) TestLoadReturnsCopies() {
	s.Require().NoError(s.store.AppendReport(s.ctx, s.newReport(0)))

	state, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	state.Reports[0].Platform = "mutated"

	again, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal("twitter", again.Reports[0].Platform)
}
