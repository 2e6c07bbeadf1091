package shutdown

import (
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"bmi-calculator/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownRunsInReverseOrder(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var order []string
	m.Register(Func(func() { order = append(order, "store") }))
	m.Register(Func(func() { order = append(order, "controller") }))

	m.Shutdown()

	assert.Equal(t, []string{"controller", "store"}, order)
	assert.Error(t, m.Context().Err())
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.SetComponentTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)

	fast := false
	m.Register(Func(func() { fast = true }))
	m.Register(Func(func() { <-release }))

	start := time.Now()
	m.Shutdown()

	assert.True(t, fast)
	assert.Less(t, time.Since(start), time.Second)
}

func TestListenStopsOnShutdown(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var signalled atomic.Bool
	stopped := m.Listen(func() { signalled.Store(true) })

	m.Shutdown()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("listener did not stop after shutdown")
	}
	assert.False(t, signalled.Load())
}

func TestListenHandlesSignal(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var signalled atomic.Bool
	shutdownRan := false
	m.Register(Func(func() { shutdownRan = true }))
	stopped := m.Listen(func() { signalled.Store(true) })

	process, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, process.Signal(syscall.SIGTERM))

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not handle SIGTERM")
	}
	assert.True(t, signalled.Load())
	assert.True(t, shutdownRan)
	assert.Error(t, m.Context().Err())
}
