//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"fraudregistry/internal/audit"
	"fraudregistry/pkg/testutil/containers"
)

func TestKafkaSinkProducesKeyedEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rp := containers.NewRedpandaContainer(t)

	sink, err := audit.NewKafkaSink(ctx, []string{rp.Broker}, "registry.audit.test")
	require.NoError(t, err)
	defer sink.Close()

	event := audit.Event{
		ID:          "evt-1",
		Type:        audit.EventReportVerified,
		Timestamp:   time.Now().UTC(),
		AgencyID:    "agency-b",
		ReportIndex: 4,
		ReportID:    "rep-4",
		Detail:      "peer",
	}
	require.NoError(t, sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics("registry.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, []byte("rep-4"), records[0].Key)

	var decoded audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &decoded))
	require.Equal(t, audit.EventReportVerified, decoded.Type)
	require.Equal(t, "agency-b", decoded.AgencyID)
}

func TestKafkaSinkToleratesExistingTopic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rp := containers.NewRedpandaContainer(t)

	first, err := audit.NewKafkaSink(ctx, []string{rp.Broker}, "registry.audit.existing")
	require.NoError(t, err)
	first.Close()

	second, err := audit.NewKafkaSink(ctx, []string{rp.Broker}, "registry.audit.existing")
	require.NoError(t, err)
	second.Close()
}
