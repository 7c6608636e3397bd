package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/wavelet"
)

// TestFlushTimeoutDoesNotStrandLock guards against a deadlock where a
// timed-out Flush left s.mu held forever because the goroutine racing
// to acquire it woke up after the timeout had already fired and
// returned without unlocking. Spec §5: "on expiry, returns Timeout and
// leaves the stream drainable by a later flush." This test holds s.mu
// directly (package-internal) to force Flush's timeout path, then
// proves the mutex is still usable afterward.
func TestFlushTimeoutDoesNotStrandLock(t *testing.T) {
	w, err := wavelet.Lookup("haar")
	require.NoError(t, err)

	s, err := New(Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 8})
	require.NoError(t, err)
	require.NoError(t, s.Push([]float64{1, 2, 3}))

	s.mu.Lock()
	release := make(chan struct{})
	go func() {
		<-release
		s.mu.Unlock()
	}()

	err = s.Flush(5 * time.Millisecond)
	require.True(t, modwterr.Is(err, modwterr.Timeout))

	// Let the goroutine release the lock the test took, after Flush has
	// already given up on it.
	close(release)
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, s.Flush(time.Second))
	stats := s.Statistics()
	require.Equal(t, int64(1), stats.BlocksProcessed)
}
