package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fraudregistry/pkg/requestcontext"
)

func TestClientInfoFromContext(t *testing.T) {
	t.Run("parses browser and os from the user agent", func(t *testing.T) {
		ctx := requestcontext.WithClientMetadata(context.Background(),
			"203.0.113.9",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		)

		info := ClientInfoFromContext(ctx)
		require.Equal(t, "203.0.113.9", info.IP)
		require.Contains(t, info.Browser, "Chrome")
		require.Contains(t, info.OS, "Windows")
	})

	t.Run("bare context yields empty provenance", func(t *testing.T) {
		info := ClientInfoFromContext(context.Background())
		require.Empty(t, info.IP)
		require.Empty(t, info.Browser)
		require.Empty(t, info.OS)
	})
}
