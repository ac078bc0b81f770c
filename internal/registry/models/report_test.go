package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "fraudregistry/pkg/domain"
	dErrors "fraudregistry/pkg/domain-errors"
)

type ReportModelSuite struct {
	suite.Suite
	now time.Time
}

func TestReportModelSuite(t *testing.T) {
	suite.Run(t, new(ReportModelSuite))
}

func (s *ReportModelSuite) SetupTest() {
	s.now = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
}

func (s *ReportModelSuite) validReport() *Report {
	r, err := NewReport("twitter", "bot-account", 55, "profile cloned", "rep-1", "agency-a", s.now)
	s.Require().NoError(err)
	return r
}

func (s *ReportModelSuite) TestNewReportValidation() {
	tests := []struct {
		name      string
		platform  string
		username  string
		riskScore int
		evidence  string
		reportID  id.ReportID
		reporter  id.AgencyID
		wantCode  dErrors.Code
	}{
		{"empty platform", "", "user", 50, "", "rep-1", "agency-a", dErrors.CodeEmptyField},
		{"empty username", "twitter", "", 50, "", "rep-1", "agency-a", dErrors.CodeEmptyField},
		{"empty report id", "twitter", "user", 50, "", "", "agency-a", dErrors.CodeEmptyField},
		{"empty reporter", "twitter", "user", 50, "", "rep-1", "", dErrors.CodeEmptyField},
		{"negative risk score", "twitter", "user", -1, "", "rep-1", "agency-a", dErrors.CodeInvalidRiskScore},
		{"risk score above 100", "twitter", "user", 101, "", "rep-1", "agency-a", dErrors.CodeInvalidRiskScore},
		{"oversized platform", strings.Repeat("p", MaxPlatformLen+1), "user", 50, "", "rep-1", "agency-a", dErrors.CodeEmptyField},
		{"oversized username", "twitter", strings.Repeat("u", MaxUsernameLen+1), 50, "", "rep-1", "agency-a", dErrors.CodeEmptyField},
		{"oversized evidence", "twitter", "user", 50, strings.Repeat("e", MaxEvidenceLen+1), "rep-1", "agency-a", dErrors.CodeEmptyField},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := NewReport(tt.platform, tt.username, tt.riskScore, tt.evidence, tt.reportID, tt.reporter, s.now)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, tt.wantCode), "got %v", err)
		})
	}

	s.Run("boundary scores are accepted", func() {
		for _, score := range []int{0, 100} {
			r, err := NewReport("twitter", "user", score, "", "rep-ok", "agency-a", s.now)
			s.Require().NoError(err)
			s.Equal(score, r.RiskScore)
			s.False(r.Verified)
			s.False(r.ActionTaken)
		}
	})

	s.Run("empty evidence is allowed", func() {
		r, err := NewReport("twitter", "user", 10, "", "rep-2", "agency-a", s.now)
		s.Require().NoError(err)
		s.Empty(r.Evidence)
	})
}

func (s *ReportModelSuite) TestRiskLevelBoundaries() {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLevelLow},
		{39, RiskLevelLow},
		{40, RiskLevelMedium},
		{69, RiskLevelMedium},
		{70, RiskLevelHigh},
		{100, RiskLevelHigh},
	}
	for _, tt := range tests {
		s.Equal(tt.want, RiskLevelFor(tt.score), "score %d", tt.score)
	}
}

func (s *ReportModelSuite) TestCanVerify() {
	s.Run("unverified report accepts a peer", func() {
		r := s.validReport()
		s.NoError(r.CanVerify("agency-b"))
	})

	s.Run("reporter cannot verify its own report", func() {
		r := s.validReport()
		err := r.CanVerify(r.ReporterID)
		s.True(dErrors.HasCode(err, dErrors.CodeSelfVerification))
	})

	s.Run("already verified is rejected", func() {
		r := s.validReport()
		r.ApplyVerification()
		err := r.CanVerify("agency-b")
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))
	})

	s.Run("self check runs after verified check", func() {
		// A reporter retrying against its own verified report sees the
		// verified rejection, matching the transition order.
		r := s.validReport()
		r.ApplyVerification()
		err := r.CanVerify(r.ReporterID)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyVerified))
	})
}

func (s *ReportModelSuite) TestCanMarkAction() {
	s.Run("unverified report rejects action", func() {
		r := s.validReport()
		err := r.CanMarkAction("account removed")
		s.True(dErrors.HasCode(err, dErrors.CodeNotVerified))
	})

	s.Run("verified report accepts action", func() {
		r := s.validReport()
		r.ApplyVerification()
		s.NoError(r.CanMarkAction("account removed"))

		r.ApplyAction("account removed")
		s.True(r.ActionTaken)
		s.Equal("account removed", r.Action)
	})

	s.Run("empty action description is allowed", func() {
		r := s.validReport()
		r.ApplyVerification()
		s.NoError(r.CanMarkAction(""))
	})

	s.Run("oversized action is rejected", func() {
		r := s.validReport()
		r.ApplyVerification()
		err := r.CanMarkAction(strings.Repeat("a", MaxActionLen+1))
		s.True(dErrors.HasCode(err, dErrors.CodeEmptyField))
	})
}
