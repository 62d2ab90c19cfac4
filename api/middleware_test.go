package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestLimiterSetEvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s := newLimiterSet(rate.Limit(1), 1)
	s.now = func() time.Time { return now }
	s.lastSweep = now

	first := s.get("10.0.0.1")
	require.True(t, first.Allow())

	now = now.Add(time.Minute)
	require.Same(t, first, s.get("10.0.0.1"))
	s.get("10.0.0.2")
	require.Equal(t, 2, s.len())

	now = now.Add(limiterIdle + time.Minute)
	s.get("10.0.0.3")
	require.Equal(t, 1, s.len())

	// an evicted client comes back with a fresh bucket
	again := s.get("10.0.0.1")
	require.NotSame(t, first, again)
	require.True(t, again.AllowN(now, 1))
}

func TestLimiterSetKeepsActiveClients(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s := newLimiterSet(rate.Limit(1), 1)
	s.now = func() time.Time { return now }
	s.lastSweep = now

	first := s.get("10.0.0.1")
	for i := 0; i < 5; i++ {
		now = now.Add(limiterIdle / 2)
		require.Same(t, first, s.get("10.0.0.1"))
	}
	require.Equal(t, 1, s.len())
}
