package stream_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/modwt"
	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/stream"
	"github.com/gowavelet/modwt/wavelet"
)

func haar(t *testing.T) *wavelet.Wavelet {
	t.Helper()
	w, err := wavelet.Lookup("haar")
	require.NoError(t, err)
	return w
}

type captureSubscriber struct {
	items     []*modwt.SingleLevelResult
	errs      []error
	completed bool
}

func (c *captureSubscriber) OnSubscribe(credit stream.CreditSource) { credit.Request(1 << 20) }
func (c *captureSubscriber) OnItem(result *modwt.SingleLevelResult)  { c.items = append(c.items, result) }
func (c *captureSubscriber) OnError(err error)                       { c.errs = append(c.errs, err) }
func (c *captureSubscriber) OnComplete()                             { c.completed = true }

// TestStreamingParity mirrors the N=1024/B=256 scenario: the
// concatenation of 4 emitted blocks must equal the direct MODWT of the
// whole signal, elementwise, under PERIODIC boundary.
func TestStreamingParity(t *testing.T) {
	const n, blockSize = 1024, 256
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(float64(i) * 0.02)
	}

	w := haar(t)
	direct, err := modwt.Forward(signal, w, boundary.Periodic)
	require.NoError(t, err)

	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: blockSize})
	require.NoError(t, err)

	sub := &captureSubscriber{}
	require.NoError(t, s.Subscribe(sub))

	for i := 0; i < n; i += blockSize {
		require.NoError(t, s.Push(signal[i:i+blockSize]))
	}
	require.NoError(t, s.Close())

	require.Len(t, sub.items, 4)
	require.True(t, sub.completed)

	var gotApprox, gotDetail []float64
	for _, item := range sub.items {
		gotApprox = append(gotApprox, item.Approx...)
		gotDetail = append(gotDetail, item.Detail...)
	}
	require.Len(t, gotApprox, n)
	for i := 0; i < n; i++ {
		require.InDelta(t, direct.Approx[i], gotApprox[i], 1e-12, "approx[%d]", i)
		require.InDelta(t, direct.Detail[i], gotDetail[i], 1e-12, "detail[%d]", i)
	}
}

// TestStreamingEquivalenceSingleBlock checks that pushing an entire
// signal as one block (B=N) equals the direct call exactly.
func TestStreamingEquivalenceSingleBlock(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	w := haar(t)

	direct, err := modwt.Forward(signal, w, boundary.Periodic)
	require.NoError(t, err)

	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: len(signal)})
	require.NoError(t, err)
	sub := &captureSubscriber{}
	require.NoError(t, s.Subscribe(sub))
	require.NoError(t, s.Push(signal))
	require.NoError(t, s.Close())

	require.Len(t, sub.items, 1)
	require.Equal(t, direct.Approx, sub.items[0].Approx)
	require.Equal(t, direct.Detail, sub.items[0].Detail)
}

func TestPushRejectsNaNWithIndex(t *testing.T) {
	w := haar(t)
	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 4})
	require.NoError(t, err)

	err = s.Push([]float64{1, 2, math.NaN(), 4})
	require.True(t, modwterr.Is(err, modwterr.InvalidSignal))
	var modErr *modwterr.Error
	require.ErrorAs(t, err, &modErr)
	require.Equal(t, 2, modErr.Index)
}

func TestBackPressureRejectsWhenQueueSaturated(t *testing.T) {
	w := haar(t)
	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 2, HighWaterMark: 1})
	require.NoError(t, err)

	// No subscriber yet, so nothing drains the pending queue.
	require.NoError(t, s.Push([]float64{1, 2}))
	err = s.Push([]float64{3, 4})
	require.True(t, modwterr.Is(err, modwterr.BackPressure))
}

func TestFlushPadBoundaryEmitsPartialBlock(t *testing.T) {
	w := haar(t)
	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 8, FlushPolicy: stream.PadBoundary})
	require.NoError(t, err)
	sub := &captureSubscriber{}
	require.NoError(t, s.Subscribe(sub))

	require.NoError(t, s.Push([]float64{1, 2, 3}))
	require.NoError(t, s.Flush(0))
	require.Len(t, sub.items, 1)
	require.Len(t, sub.items[0].Approx, 8)

	stats := s.Statistics()
	require.True(t, stats.LastBlockPartial)
}

func TestFlushTruncateEmitsShortBlock(t *testing.T) {
	w := haar(t)
	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 8, FlushPolicy: stream.Truncate})
	require.NoError(t, err)
	sub := &captureSubscriber{}
	require.NoError(t, s.Subscribe(sub))

	require.NoError(t, s.Push([]float64{1, 2, 3}))
	require.NoError(t, s.Flush(time.Second))
	require.Len(t, sub.items, 1)
	require.Len(t, sub.items[0].Approx, 3)
}

func TestCancelSignalsSubscriber(t *testing.T) {
	w := haar(t)
	s, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 4})
	require.NoError(t, err)
	sub := &captureSubscriber{}
	require.NoError(t, s.Subscribe(sub))

	s.Cancel()
	require.Len(t, sub.errs, 1)
	require.True(t, modwterr.Is(sub.errs[0], modwterr.Cancelled))

	err = s.Push([]float64{1, 2, 3, 4})
	require.True(t, modwterr.Is(err, modwterr.Cancelled))
}

func TestNewRejectsBadConfig(t *testing.T) {
	w := haar(t)
	_, err := stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 1})
	require.True(t, modwterr.Is(err, modwterr.InvalidArgument))

	_, err = stream.New(stream.Config{Wavelet: w, Mode: boundary.Periodic, BlockSize: 8, Overlap: 5})
	require.True(t, modwterr.Is(err, modwterr.InvalidArgument))
}
