package verification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fraudregistry/internal/registry/directory"
	"fraudregistry/internal/registry/ledger"
	"fraudregistry/internal/registry/models"
	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

type EngineSuite struct {
	suite.Suite
	ledger *ledger.Ledger
	dir    *directory.Directory
	engine *Engine
	seq    int
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ledger = ledger.New()
	s.dir = directory.New()
	s.engine = New(s.ledger, s.dir)
	s.seq = 0

	for _, agencyID := range []string{"agency-a", "agency-b"} {
		a, err := models.NewAgency(id.AgencyID(agencyID), agencyID, time.Now())
		s.Require().NoError(err)
		s.dir.Put(*a)
	}
}

func (s *EngineSuite) submit(riskScore int, reporter id.AgencyID) *models.Report {
	s.seq++
	r, err := models.NewReport("twitter", "bot", riskScore, "", id.ReportID(fmt.Sprintf("rep-%d", s.seq)), reporter, time.Now())
	s.Require().NoError(err)
	s.engine.AutoVerifyOnSubmit(r)
	s.ledger.Append(r)
	s.dir.IncrementTotal(reporter)
	if r.Verified {
		s.dir.IncrementVerified(reporter)
	}
	return r
}

func (s *EngineSuite) TestAutoVerifyThreshold() {
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{69, false},
		{70, true},
		{100, true},
	}
	for _, tt := range tests {
		s.Run(fmt.Sprintf("score %d", tt.score), func() {
			r, err := models.NewReport("twitter", "bot", tt.score, "", id.ReportID(fmt.Sprintf("auto-%d", tt.score)), "agency-a", time.Now())
			s.Require().NoError(err)
			s.Equal(tt.want, s.engine.AutoVerifyOnSubmit(r))
			s.Equal(tt.want, r.Verified)
		})
	}
}

func (s *EngineSuite) TestStageVerifyLeavesLiveStateUntouched() {
	r := s.submit(50, "agency-a")

	stage, err := s.engine.StageVerify("agency-b", r.Index)
	s.Require().NoError(err)
	s.True(stage.Report.Verified)
	s.Equal(int64(1), stage.Reporter.VerifiedReports)

	// Nothing committed yet.
	live, err := s.ledger.Get(r.Index)
	s.Require().NoError(err)
	s.False(live.Verified)
	reporter, _ := s.dir.Snapshot("agency-a")
	s.Zero(reporter.VerifiedReports)

	s.engine.CommitVerify(stage)

	live, _ = s.ledger.Get(r.Index)
	s.True(live.Verified)
	reporter, _ = s.dir.Snapshot("agency-a")
	s.Equal(int64(1), reporter.VerifiedReports)
}

func (s *EngineSuite) TestStageVerifyRejections() {
	s.Run("unknown index", func() {
		_, err := s.engine.StageVerify("agency-b", 42)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidIndex))
	})

	s.Run("self verification", func() {
		r := s.submit(50, "agency-a")
		_, err := s.engine.StageVerify("agency-a", r.Index)
		s.True(dErrors.HasCode(err, dErrors.CodeSelfVerification))
	})

	s.Run("already verified including auto", func() {
		r := s.submit(90, "agency-a")
		s.Require().True(r.Verified)
		_, err := s.engine.StageVerify("agency-b", r.Index)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))
	})
}

func (s *EngineSuite) TestStageAction() {
	s.Run("unverified report rejected", func() {
		r := s.submit(50, "agency-a")
		_, err := s.engine.StageAction(r.Index, "removed")
		s.True(dErrors.HasCode(err, dErrors.CodeNotVerified))
	})

	s.Run("commit records action", func() {
		r := s.submit(90, "agency-a")

		stage, err := s.engine.StageAction(r.Index, "account suspended")
		s.Require().NoError(err)

		live, _ := s.ledger.Get(r.Index)
		s.False(live.ActionTaken)

		s.engine.CommitAction(stage)
		live, _ = s.ledger.Get(r.Index)
		s.True(live.ActionTaken)
		s.Equal("account suspended", live.Action)
	})

	s.Run("action on acted report stays allowed and overwrites", func() {
		r := s.submit(90, "agency-a")
		stage, err := s.engine.StageAction(r.Index, "first")
		s.Require().NoError(err)
		s.engine.CommitAction(stage)

		stage, err = s.engine.StageAction(r.Index, "second")
		s.Require().NoError(err)
		s.engine.CommitAction(stage)

		live, _ := s.ledger.Get(r.Index)
		s.Equal("second", live.Action)
	})
}
