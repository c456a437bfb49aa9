package service_test

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-dashboard/backend/internal/domain"
	"github.com/pkordes/trip-dashboard/backend/internal/service"
)

// mockResolver counts how often the refresher resolves.
type mockResolver struct {
	calls atomic.Int32
	phase domain.Phase
}

func (m *mockResolver) Current() domain.Countdown {
	m.calls.Add(1)
	return domain.Countdown{Phase: m.phase, ActiveSegment: "Hong Kong"}
}

// compile-time check: both the real service and the mock satisfy the resolver.
var (
	_ service.CountdownResolver = (*mockResolver)(nil)
	_ service.CountdownResolver = (*service.CountdownService)(nil)
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestCountdownRefresher_LatestBeforeStart(t *testing.T) {
	r := service.NewCountdownRefresher(&mockResolver{}, time.Minute, quietLogger())

	_, ok := r.Latest()

	assert.False(t, ok)
}

func TestCountdownRefresher_StartResolvesImmediately(t *testing.T) {
	m := &mockResolver{phase: domain.PhaseInTransit}
	r := service.NewCountdownRefresher(m, time.Hour, quietLogger())

	require.NoError(t, r.Start())
	t.Cleanup(r.Stop)

	got, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, domain.PhaseInTransit, got.Phase)
	assert.Equal(t, int32(1), m.calls.Load())
}

func TestCountdownRefresher_StartTwice(t *testing.T) {
	r := service.NewCountdownRefresher(&mockResolver{}, time.Hour, quietLogger())

	require.NoError(t, r.Start())
	t.Cleanup(r.Stop)

	assert.ErrorIs(t, r.Start(), service.ErrRefresherRunning)
}

func TestCountdownRefresher_Ticks(t *testing.T) {
	m := &mockResolver{}
	r := service.NewCountdownRefresher(m, time.Second, quietLogger())

	require.NoError(t, r.Start())
	t.Cleanup(r.Stop)

	assert.Eventually(t, func() bool { return m.calls.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)
}

func TestCountdownRefresher_StopDisarms(t *testing.T) {
	m := &mockResolver{}
	r := service.NewCountdownRefresher(m, time.Second, quietLogger())

	require.NoError(t, r.Start())
	r.Stop()
	after := m.calls.Load()

	time.Sleep(1500 * time.Millisecond)

	assert.Equal(t, after, m.calls.Load(), "resolver must not run after Stop returns")

	// The last snapshot stays readable.
	_, ok := r.Latest()
	assert.True(t, ok)
}

func TestCountdownRefresher_StopIsIdempotent(t *testing.T) {
	r := service.NewCountdownRefresher(&mockResolver{}, time.Hour, quietLogger())

	r.Stop() // never started

	require.NoError(t, r.Start())
	r.Stop()
	r.Stop()

	// A stopped refresher can be armed again.
	require.NoError(t, r.Start())
	r.Stop()
}
