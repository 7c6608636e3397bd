package stream_test

import (
	"os"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/stream"
	"github.com/gowavelet/modwt/wavelet"
)

// TestWireCharmbraceletLoggerAsStreamLogger demonstrates that
// *charmbracelet/log.Logger satisfies stream.Logger structurally: the
// streaming core never imports charmbracelet/log itself, but a caller
// can hand one in to get structured block/back-pressure diagnostics.
func TestWireCharmbraceletLoggerAsStreamLogger(t *testing.T) {
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: charmlog.DebugLevel})

	w, err := wavelet.Lookup("haar")
	require.NoError(t, err)

	s, err := stream.New(stream.Config{
		Wavelet:       w,
		Mode:          boundary.Periodic,
		BlockSize:     2,
		HighWaterMark: 1,
		Logger:        logger,
	})
	require.NoError(t, err)

	require.NoError(t, s.Push([]float64{1, 2}))
	err = s.Push([]float64{3, 4})
	require.Error(t, err)
}
