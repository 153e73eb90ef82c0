package lettercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingGen(letter string, calls *int) GenerateFunc {
	return func(_ context.Context, _, _ string) (string, error) {
		*calls++
		return letter, nil
	}
}

func TestGetOrGenerate_SecondCallHitsCache(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	gen := countingGen("Dear [Hiring Manager],", &calls)

	first, cached, err := c.GetOrGenerate(context.Background(), "resume", "job", gen)
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := c.GetOrGenerate(context.Background(), "resume", "job", gen)
	require.NoError(t, err)
	assert.True(t, cached)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrGenerate_DistinctInputsDistinctEntries(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	gen := countingGen("letter", &calls)

	_, _, err := c.GetOrGenerate(context.Background(), "resume", "job", gen)
	require.NoError(t, err)
	_, _, err = c.GetOrGenerate(context.Background(), "resume", "other job", gen)
	require.NoError(t, err)
	_, _, err = c.GetOrGenerate(context.Background(), "other resume", "job", gen)
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, c.Len())
}

func TestGetOrGenerate_FailuresNeverCached(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	failing := func(_ context.Context, _, _ string) (string, error) {
		calls++
		return "", errors.New("service unavailable")
	}

	_, _, err := c.GetOrGenerate(context.Background(), "resume", "job", failing)
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	// The next call retries rather than replaying the failure.
	_, _, err = c.GetOrGenerate(context.Background(), "resume", "job", failing)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrGenerate_ExpiredHitIsMiss(t *testing.T) {
	c := New(time.Hour)
	current := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	calls := 0
	gen := countingGen("letter", &calls)

	_, _, err := c.GetOrGenerate(context.Background(), "resume", "job", gen)
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)

	_, cached, err := c.GetOrGenerate(context.Background(), "resume", "job", gen)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, calls)
}

func TestClear_RemovesAllEntries(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	gen := countingGen("letter", &calls)

	_, _, _ = c.GetOrGenerate(context.Background(), "a", "b", gen)
	_, _, _ = c.GetOrGenerate(context.Background(), "c", "d", gen)
	require.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())

	_, cached, err := c.GetOrGenerate(context.Background(), "a", "b", gen)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestGet_DirectLookup(t *testing.T) {
	c := New(time.Hour)
	_, _, err := c.GetOrGenerate(context.Background(), "resume", "job", countingGen("letter", new(int)))
	require.NoError(t, err)

	letter, ok := c.Get("resume", "job")
	assert.True(t, ok)
	assert.Equal(t, "letter", letter)

	_, ok = c.Get("resume", "different")
	assert.False(t, ok)
}

func TestNew_NonPositiveTTLUsesDefault(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
