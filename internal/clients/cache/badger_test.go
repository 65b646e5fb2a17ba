package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BadgerCache(t *testing.T) {
	ctx := context.Background()
	c, err := newInMemoryBadger()
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(ctx, "eur:usd:2025-10-30")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "eur:usd:2025-10-30", decimal.RequireFromString("1.16"), time.Hour))
	rate, ok, err := c.Get(ctx, "eur:usd:2025-10-30")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.16", rate.String())
}

func Test_BadgerCache_ShouldExpireEntries(t *testing.T) {
	ctx := context.Background()
	c, err := newInMemoryBadger()
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Set(ctx, "eur:gbp:2025-10-30", decimal.RequireFromString("0.85"), time.Second))
	time.Sleep(1100 * time.Millisecond)

	_, ok, err := c.Get(ctx, "eur:gbp:2025-10-30")
	require.NoError(t, err)
	assert.False(t, ok)
}
