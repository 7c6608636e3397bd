// Package stream implements the block-streaming adapter (spec §4.6): a
// ring-buffered accumulator that turns a continuous push of samples
// into a sequence of single-level MODWT results, delivered to a
// subscriber under a credit-based back-pressure protocol.
package stream

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gowavelet/modwt/boundary"
	"github.com/gowavelet/modwt/modwt"
	"github.com/gowavelet/modwt/modwterr"
	"github.com/gowavelet/modwt/wavelet"
)

// FlushPolicy selects how Flush treats a buffered remainder shorter
// than BlockSize (spec §9: "whether the final emission is padded or
// truncated may be implementation-selected, but the choice must be
// exposed in the stream configuration").
type FlushPolicy int

const (
	// PadBoundary extends the remainder up to BlockSize using the
	// stream's configured boundary mode before transforming it.
	PadBoundary FlushPolicy = iota
	// Truncate transforms the remainder at its own, shorter length
	// instead of padding it.
	Truncate
)

// Config configures a Stream (spec §4.6).
type Config struct {
	Wavelet     *wavelet.Wavelet
	Mode        boundary.Mode
	BlockSize   int
	Overlap     int
	FlushPolicy FlushPolicy

	// HighWaterMark bounds how many completed blocks may sit in the
	// pending output queue before Push starts rejecting new samples with
	// BackPressure. Defaults to 64 when <= 0.
	HighWaterMark int

	// Logger receives optional diagnostic events. Defaults to a no-op
	// sink.
	Logger Logger
}

// Statistics reports a Stream's cumulative progress (spec §4.6).
type Statistics struct {
	SamplesProcessed int64
	BlocksProcessed  int64
	Throughput       float64 // samples_processed / wall_time, in samples/sec
	LastBlockPartial bool
}

// Stream is a single-producer/single-consumer MODWT block pipeline.
// All exported methods are safe for the documented SPSC usage: one
// goroutine calling Push/Flush, and subscriber callbacks invoked
// synchronously from that same goroutine.
type Stream struct {
	id  uuid.UUID
	cfg Config

	mu         sync.Mutex
	buffer     []float64
	pending    []*modwt.SingleLevelResult
	credit     int64
	subscriber Subscriber
	closed     bool
	cancelled  bool

	samplesProcessed int64
	blocksProcessed  int64
	lastBlockPartial bool
	startedAt        time.Time
}

// New validates cfg and constructs a Stream (spec §4.6: block size B
// any B >= L of the wavelet, overlap O in [0, B/2]).
func New(cfg Config) (*Stream, error) {
	if cfg.Wavelet == nil {
		return nil, modwterr.New(modwterr.InvalidWavelet, "wavelet", nil, "non-nil *wavelet.Wavelet")
	}
	if !cfg.Mode.Valid() {
		return nil, modwterr.New(modwterr.InvalidBoundaryMode, "mode", int(cfg.Mode), "Periodic, ZeroPadding or Symmetric")
	}
	if cfg.BlockSize < cfg.Wavelet.Length() {
		return nil, modwterr.New(modwterr.InvalidArgument, "blockSize", cfg.BlockSize, "blockSize >= wavelet filter length")
	}
	if cfg.Overlap < 0 || cfg.Overlap > cfg.BlockSize/2 {
		return nil, modwterr.New(modwterr.InvalidArgument, "overlap", cfg.Overlap, "0 <= overlap <= blockSize/2")
	}
	if cfg.HighWaterMark <= 0 {
		cfg.HighWaterMark = 64
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}

	return &Stream{
		id:        uuid.New(),
		cfg:       cfg,
		startedAt: time.Now(),
	}, nil
}

// ID returns the stream's unique identifier.
func (s *Stream) ID() uuid.UUID { return s.id }

// Subscribe attaches the stream's sole consumer. It may be called only
// once per stream.
func (s *Stream) Subscribe(sub Subscriber) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return modwterr.ErrClosed
	}
	if s.subscriber != nil {
		s.mu.Unlock()
		return modwterr.New(modwterr.InvalidArgument, "subscriber", nil, "a stream may have only one subscriber")
	}
	s.subscriber = sub
	s.mu.Unlock()

	sub.OnSubscribe(creditSource{s: s})
	s.emitPending()
	return nil
}

// Push appends samples to the ring buffer, transforming and enqueueing
// every completed block of BlockSize samples as it fills (spec §4.6).
// It returns BackPressure without consuming samples if the pending
// output queue is already at its high-water mark.
func (s *Stream) Push(samples []float64) error {
	if err := modwterr.CheckSignal(samples); err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return modwterr.ErrClosed
	}
	if s.cancelled {
		s.mu.Unlock()
		return modwterr.ErrCancelled
	}
	if len(s.pending) >= s.cfg.HighWaterMark {
		s.mu.Unlock()
		s.cfg.Logger.Warnf("stream %s: push rejected, output queue at high-water mark %d", s.id, s.cfg.HighWaterMark)
		return modwterr.ErrBackPressure
	}

	s.buffer = append(s.buffer, samples...)
	s.samplesProcessed += int64(len(samples))

	if err := s.consumeBlocks(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.emitPending()
	return nil
}

// consumeBlocks must be called with s.mu held. It turns every complete
// BlockSize chunk of the buffer into a SingleLevelResult, retaining the
// last Overlap samples for the next block per spec §4.6.
func (s *Stream) consumeBlocks() error {
	b := s.cfg.BlockSize
	for len(s.buffer) >= b {
		block := append([]float64(nil), s.buffer[:b]...)
		result, err := modwt.Forward(block, s.cfg.Wavelet, s.cfg.Mode)
		if err != nil {
			return err
		}
		s.pending = append(s.pending, result)
		s.blocksProcessed++
		s.cfg.Logger.Debugf("stream %s: block %d transformed (%d samples)", s.id, s.blocksProcessed, b)

		if s.cfg.Overlap > 0 {
			s.buffer = append(s.buffer[:0:0], s.buffer[b-s.cfg.Overlap:]...)
		} else {
			s.buffer = append(s.buffer[:0:0], s.buffer[b:]...)
		}
	}
	return nil
}

// emitPending delivers as many pending results to the subscriber as
// outstanding credit allows, in strict arrival order (spec §4.6
// ordering guarantee).
func (s *Stream) emitPending() {
	for {
		s.mu.Lock()
		if s.subscriber == nil || s.credit <= 0 || len(s.pending) == 0 {
			s.mu.Unlock()
			return
		}
		result := s.pending[0]
		s.pending = s.pending[1:]
		s.credit--
		sub := s.subscriber
		s.mu.Unlock()

		sub.OnItem(result)
	}
}

// Flush transforms any remaining buffered samples as a final, partial
// block according to cfg.FlushPolicy, then delivers it like any other
// block. Flush is synchronous and CPU-bound; timeout bounds how long it
// waits to acquire the stream's internal lock against a concurrent
// Push from a misbehaving caller sharing the stream outside the
// documented single-producer contract. A zero or negative timeout
// waits indefinitely. On expiry Flush returns Timeout without ever
// having acquired the lock, leaving the stream drainable by a later
// flush (spec §5).
func (s *Stream) Flush(timeout time.Duration) error {
	if timeout > 0 {
		deadline := time.Now().Add(timeout)
		for !s.mu.TryLock() {
			if time.Now().After(deadline) {
				return modwterr.ErrTimeout
			}
			time.Sleep(time.Millisecond)
		}
	} else {
		s.mu.Lock()
	}
	defer s.mu.Unlock()

	if s.closed {
		return modwterr.ErrClosed
	}
	if s.cancelled {
		return modwterr.ErrCancelled
	}
	if len(s.buffer) == 0 {
		return nil
	}

	remainder := s.buffer
	s.lastBlockPartial = true

	var block []float64
	if s.cfg.FlushPolicy == PadBoundary && len(remainder) < s.cfg.BlockSize {
		block = make([]float64, s.cfg.BlockSize)
		copy(block, remainder)
		for i := len(remainder); i < s.cfg.BlockSize; i++ {
			idx, weight, err := boundary.Resolve(i, len(remainder), s.cfg.Mode)
			if err != nil {
				return err
			}
			if weight != 0 {
				block[i] = remainder[idx] * weight
			}
		}
	} else {
		block = append([]float64(nil), remainder...)
	}

	result, err := modwt.Forward(block, s.cfg.Wavelet, s.cfg.Mode)
	if err != nil {
		return err
	}
	s.pending = append(s.pending, result)
	s.blocksProcessed++
	s.buffer = nil

	s.mu.Unlock()
	s.emitPending()
	s.mu.Lock()
	return nil
}

// Close gracefully ends the stream: pending results are delivered as far
// as the subscriber's outstanding credit allows, any left over are
// discarded, then the subscriber's OnComplete fires. Close releases the
// ring buffer synchronously without flushing it; a later Push or Flush
// returns Closed.
func (s *Stream) Close() error {
	s.emitPending()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	sub := s.subscriber
	s.buffer = nil
	s.pending = nil
	s.mu.Unlock()

	if sub != nil {
		sub.OnComplete()
	}
	return nil
}

// Cancel aborts the stream immediately, discarding undelivered results
// and the ring buffer, and signals the subscriber with a Cancelled
// error (spec §4.6: "Cancellation of a stream discards undelivered
// results and is observable via a Cancelled terminal signal").
func (s *Stream) Cancel() {
	s.mu.Lock()
	if s.cancelled || s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	sub := s.subscriber
	s.buffer = nil
	s.pending = nil
	s.mu.Unlock()

	if sub != nil {
		sub.OnError(modwterr.ErrCancelled)
	}
}

// Statistics returns the stream's cumulative counters (spec §4.6).
func (s *Stream) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := time.Since(s.startedAt).Seconds()
	throughput := 0.0
	if elapsed > 0 {
		throughput = float64(s.samplesProcessed) / elapsed
	}
	return Statistics{
		SamplesProcessed: s.samplesProcessed,
		BlocksProcessed:  s.blocksProcessed,
		Throughput:       throughput,
		LastBlockPartial: s.lastBlockPartial,
	}
}
