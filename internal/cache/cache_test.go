package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krowne/krownebase/internal/config"
)

func TestNewDisabledReturnsNoop(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	var dest map[string]string
	require.NoError(t, c.Set(context.Background(), "k", map[string]string{"a": "b"}, time.Minute))
	assert.ErrorIs(t, c.Get(context.Background(), "k", &dest), ErrMiss)
	assert.NoError(t, c.Close())
}

func TestNewUnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
}
