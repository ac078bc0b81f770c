//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fraudregistry/internal/audit"
	"fraudregistry/pkg/testutil/containers"
)

func TestRedisSinkAppendsToStream(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	sink := audit.NewRedisSink(rc.Client, "registry:audit:test", 100)

	event := audit.Event{
		ID:          "evt-1",
		Type:        audit.EventReportSubmitted,
		Timestamp:   time.Now().UTC(),
		AgencyID:    "agency-a",
		ReportIndex: 0,
		ReportID:    "rep-1",
		Platform:    "twitter",
		RiskScore:   85,
	}
	require.NoError(t, sink.Append(ctx, event))

	entries, err := rc.Client.XRange(ctx, "registry:audit:test", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, string(audit.EventReportSubmitted), entries[0].Values["type"])

	var decoded audit.Event
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["payload"].(string)), &decoded))
	require.Equal(t, event.ID, decoded.ID)
	require.Equal(t, event.ReportID, decoded.ReportID)
	require.Equal(t, event.RiskScore, decoded.RiskScore)
}

func TestRedisSinkTrimsApproximately(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	sink := audit.NewRedisSink(rc.Client, "registry:audit:trim", 10)

	for i := 0; i < 500; i++ {
		require.NoError(t, sink.Append(ctx, audit.Event{
			ID:   "evt",
			Type: audit.EventReportSubmitted,
		}))
	}

	// MAXLEN ~ trims lazily; the stream must stay bounded well below the
	// total appended.
	length, err := rc.Client.XLen(ctx, "registry:audit:trim").Result()
	require.NoError(t, err)
	require.Less(t, length, int64(500))
}
