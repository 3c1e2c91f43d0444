package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) EngagementCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewEngagementCache(client)
}

func TestMarkOnce(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	first, err := c.MarkOnce(ctx, "u1", "esg:assessment_started")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := c.MarkOnce(ctx, "u1", "esg:assessment_started")
	require.NoError(t, err)
	assert.False(t, again)

	// Distinct markers and users are independent.
	other, err := c.MarkOnce(ctx, "u1", "unified:assessment_started")
	require.NoError(t, err)
	assert.True(t, other)

	otherUser, err := c.MarkOnce(ctx, "u2", "esg:assessment_started")
	require.NoError(t, err)
	assert.True(t, otherUser)
}

func TestPoints(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	pts, err := c.GetPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, pts)

	require.NoError(t, c.AddPoints(ctx, "u1", 10))
	require.NoError(t, c.AddPoints(ctx, "u1", 50))

	pts, err = c.GetPoints(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 60, pts)
}

func TestGetTop(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.AddPoints(ctx, "u1", 85))
	require.NoError(t, c.AddPoints(ctx, "u2", 10))
	require.NoError(t, c.AddPoints(ctx, "u3", 60))

	top, err := c.GetTop(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "u1", top[0].UserID)
	assert.Equal(t, 85, top[0].Points)
	assert.Equal(t, 1, top[0].Rank)

	assert.Equal(t, "u3", top[1].UserID)
	assert.Equal(t, 60, top[1].Points)
	assert.Equal(t, 2, top[1].Rank)
}

func TestGetTop_Empty(t *testing.T) {
	c := newTestCache(t)
	top, err := c.GetTop(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}
