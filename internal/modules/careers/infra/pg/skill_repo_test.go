package pg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrendingQueryUnboundedForNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		q, args := trendingQuery(limit)
		require.NotContains(t, q, "LIMIT", "limit %d must not emit a LIMIT clause", limit)
		require.Empty(t, args)
	}
}

func TestTrendingQueryBoundedForPositiveLimit(t *testing.T) {
	q, args := trendingQuery(10)
	require.True(t, strings.HasSuffix(q, "LIMIT $1"))
	require.Equal(t, []any{10}, args)
}
