package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fraudregistry/internal/registry/models"
	dErrors "fraudregistry/pkg/domain-errors"
	"fraudregistry/pkg/testutil"
)

// TestCrossAgencyWorkflow walks the full lifecycle of one report: submission
// by one agency, confirmation by a second, and remediation.
func TestCrossAgencyWorkflow(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, "owner-1", "Registry Owner", "")
	require.NoError(t, err)

	testutil.Given(t, "two authorized agencies", func(t *testing.T) {
		_, _, err := svc.RegisterAgency(ctx, "owner-1", "agency-a", "Agency A")
		require.NoError(t, err)
		_, _, err = svc.RegisterAgency(ctx, "owner-1", "agency-b", "Agency B")
		require.NoError(t, err)
	})

	var index int64
	testutil.When(t, "agency A reports a medium-risk account", func(t *testing.T) {
		report, err := svc.SubmitReport(ctx, "agency-a", models.SubmitReportRequest{
			Platform:  "instagram",
			Username:  "fake-celebrity",
			RiskScore: 55,
			Evidence:  "stolen photos, no history",
			ReportID:  "case-2031",
		})
		require.NoError(t, err)
		require.False(t, report.Verified)
		index = report.Index
	})

	testutil.Then(t, "agency A cannot confirm its own report", func(t *testing.T) {
		_, err := svc.VerifyReport(ctx, "agency-a", index)
		require.True(t, dErrors.HasCode(err, dErrors.CodeSelfVerification))
	})

	testutil.Then(t, "agency B confirms it and remediation is recorded", func(t *testing.T) {
		verified, err := svc.VerifyReport(ctx, "agency-b", index)
		require.NoError(t, err)
		require.True(t, verified.Verified)

		acted, err := svc.MarkActionTaken(ctx, "agency-b", index, "account suspended by platform")
		require.NoError(t, err)
		require.True(t, acted.ActionTaken)

		stats := svc.Statistics(ctx)
		require.Equal(t, models.Statistics{Total: 1, Verified: 1, HighRisk: 0, ActionTaken: 1}, stats)
	})
}
