package query

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

type QuerySuite struct {
	suite.Suite
	ledger *ledger.Ledger
	dir    *directory.Directory
	index  *Index
	seq    int
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QuerySuite))
}

func (s *QuerySuite) SetupTest() {
	s.ledger = ledger.New()
	s.dir = directory.New()
	s.index = New(s.ledger, s.dir)
	s.seq = 0
}

func (s *QuerySuite) submit(platform string, riskScore int) *models.Report {
	s.seq++
	r, err := models.NewReport(platform, "bot", riskScore, "", id.ReportID(fmt.Sprintf("rep-%d", s.seq)), "agency-a", time.Now())
	s.Require().NoError(err)
	if riskScore >= models.AutoVerifyThreshold {
		r.ApplyVerification()
	}
	s.ledger.Append(r)
	s.index.RecordSubmission(platform)
	return r
}

func (s *QuerySuite) TestLimitValidation() {
	for _, limit := range []int{0, -1, 101} {
		_, err := s.index.ReportsByPlatform("twitter", 0, limit)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidLimit), "limit %d", limit)

		_, err = s.index.HighRiskReports(limit)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidLimit), "limit %d", limit)
	}

	for _, limit := range []int{1, 100} {
		_, err := s.index.ReportsByPlatform("twitter", 0, limit)
		s.NoError(err, "limit %d", limit)
	}
}

func (s *QuerySuite) TestReportsByPlatform() {
	s.submit("twitter", 10)   // 0
	s.submit("instagram", 20) // 1
	s.submit("twitter", 30)   // 2
	s.submit("twitter", 40)   // 3
	s.submit("tiktok", 50)    // 4

	s.Run("ascending index order with exact match", func() {
		indices, err := s.index.ReportsByPlatform("twitter", 0, 10)
		s.Require().NoError(err)
		s.Equal([]int64{0, 2, 3}, indices)
	})

	s.Run("platform match is case sensitive", func() {
		indices, err := s.index.ReportsByPlatform("Twitter", 0, 10)
		s.Require().NoError(err)
		s.Empty(indices)
	})

	s.Run("offset skips matches not ledger rows", func() {
		indices, err := s.index.ReportsByPlatform("twitter", 1, 10)
		s.Require().NoError(err)
		s.Equal([]int64{2, 3}, indices)
	})

	s.Run("limit truncates", func() {
		indices, err := s.index.ReportsByPlatform("twitter", 0, 2)
		s.Require().NoError(err)
		s.Equal([]int64{0, 2}, indices)
	})

	s.Run("offset beyond matches yields empty result", func() {
		indices, err := s.index.ReportsByPlatform("twitter", 50, 10)
		s.Require().NoError(err)
		s.Empty(indices)
	})

	s.Run("negative offset rejected", func() {
		_, err := s.index.ReportsByPlatform("twitter", -1, 10)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *QuerySuite) TestHighRiskReports() {
	s.submit("twitter", 90)  // 0: high
	s.submit("twitter", 69)  // 1
	s.submit("twitter", 70)  // 2: high, boundary
	s.submit("twitter", 100) // 3: high

	s.Run("most recent first", func() {
		indices, err := s.index.HighRiskReports(10)
		s.Require().NoError(err)
		s.Equal([]int64{3, 2, 0}, indices)
	})

	s.Run("limit keeps the most recent", func() {
		indices, err := s.index.HighRiskReports(2)
		s.Require().NoError(err)
		s.Equal([]int64{3, 2}, indices)
	})
}

func (s *QuerySuite) TestStatisticsMatchesIndependentScan() {
	s.submit("twitter", 90)     // auto verified, high risk
	s.submit("twitter", 30)     // unverified
	r := s.submit("tiktok", 75) // auto verified, high risk
	r.ApplyAction("removed")

	stats := s.index.Statistics()
	s.Equal(models.Statistics{Total: 3, Verified: 2, HighRisk: 2, ActionTaken: 1}, stats)

	// An independent scan of the ledger produces the same tuple.
	var independent models.Statistics
	for _, rep := range s.ledger.Reports() {
		independent.Total++
		if rep.Verified {
			independent.Verified++
		}
		if rep.RiskScore >= models.HighRiskThreshold {
			independent.HighRisk++
		}
		if rep.ActionTaken {
			independent.ActionTaken++
		}
	}
	s.Equal(independent, stats)
}

func (s *QuerySuite) TestPlatformCountAndTotals() {
	s.Zero(s.index.PlatformCount("twitter"))
	s.Zero(s.index.TotalReports())

	s.submit("twitter", 10)
	s.submit("twitter", 20)
	s.submit("tiktok", 30)

	s.Equal(int64(2), s.index.PlatformCount("twitter"))
	s.Equal(int64(1), s.index.PlatformCount("tiktok"))
	s.Zero(s.index.PlatformCount("never-seen"))
	s.Equal(int64(3), s.index.TotalReports())
}

func (s *QuerySuite) TestRestoreRebuildsPlatformCounts() {
	s.submit("twitter", 10)
	s.submit("tiktok", 20)
	s.submit("twitter", 30)

	rebuilt := New(s.ledger, s.dir)
	rebuilt.Restore()
	s.Equal(int64(2), rebuilt.PlatformCount("twitter"))
	s.Equal(int64(1), rebuilt.PlatformCount("tiktok"))
}

func (s *QuerySuite) TestAgencyInfoEmptyDefault() {
	info := s.index.AgencyInfo("ghost")
	s.Empty(info.ID)
	s.False(info.Authorized)
	s.Zero(info.TotalReports)
}
