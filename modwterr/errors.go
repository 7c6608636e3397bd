// Package modwterr defines the typed error taxonomy shared by every MODWT
// package. Errors are returned values, never panics or logged side
// channels: validation is eager and total, and identical invalid inputs
// always yield identical error kinds and messages.
package modwterr

import "fmt"

// Kind classifies a failure. See spec §7 for the taxonomy.
type Kind int

const (
	// InvalidSignal covers nil/empty input or input containing NaN/±Inf.
	InvalidSignal Kind = iota
	// InvalidWavelet covers an unknown wavelet name or a filter that fails
	// L2-normalization/QMR validation.
	InvalidWavelet
	// InvalidBoundaryMode covers a boundary mode unsupported by the
	// requested operation.
	InvalidBoundaryMode
	// InvalidLevel covers a decomposition depth below 1 or above the
	// admissible maximum for the given signal length and filter length.
	InvalidLevel
	// InvalidArgument covers malformed configuration: negative block
	// size, overlap >= block size, and similar parameter misuse.
	InvalidArgument
	// BackPressure is returned by a streaming producer that must be
	// retried later; it is recoverable.
	BackPressure
	// Closed is returned by any operation attempted on a closed stream.
	Closed
	// Cancelled is observed by subscribers when a stream is aborted.
	Cancelled
	// Timeout is returned when a flush exceeds its deadline.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case InvalidSignal:
		return "InvalidSignal"
	case InvalidWavelet:
		return "InvalidWavelet"
	case InvalidBoundaryMode:
		return "InvalidBoundaryMode"
	case InvalidLevel:
		return "InvalidLevel"
	case InvalidArgument:
		return "InvalidArgument"
	case BackPressure:
		return "BackPressure"
	case Closed:
		return "Closed"
	case Cancelled:
		return "Cancelled"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Error carries structured diagnostic context: which parameter failed,
// the observed value, and the allowed value or constraint. It never
// wraps a wall-clock timestamp or pointer identity, so two calls with
// identical invalid input produce byte-identical messages.
type Error struct {
	Kind  Kind
	Param string // name of the offending parameter, e.g. "signal", "levels"
	Got   any    // observed value, nil if not applicable
	Want  string // description of the allowed value/constraint
	Index int    // offending element index, -1 if not applicable
	cause error
}

func (e *Error) Error() string {
	switch {
	case e.Index >= 0 && e.Got != nil:
		return fmt.Sprintf("%s: %s[%d]=%v, want %s", e.Kind, e.Param, e.Index, e.Got, e.Want)
	case e.Got != nil:
		return fmt.Sprintf("%s: %s=%v, want %s", e.Kind, e.Param, e.Got, e.Want)
	case e.Param != "":
		return fmt.Sprintf("%s: %s, want %s", e.Kind, e.Param, e.Want)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a *Error of the same Kind, so callers can
// write errors.Is(err, modwterr.New(modwterr.Closed, ...)) or compare
// against the package-level sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error with no offending index.
func New(kind Kind, param string, got any, want string) *Error {
	return &Error{Kind: kind, Param: param, Got: got, Want: want, Index: -1}
}

// AtIndex constructs an *Error pointing at a specific offending element,
// e.g. the index of the first NaN sample in a signal.
func AtIndex(kind Kind, param string, index int, got any, want string) *Error {
	return &Error{Kind: kind, Param: param, Got: got, Want: want, Index: index}
}

// Wrap attaches a causal error, preserved via Unwrap, to a new *Error of
// the given kind.
func Wrap(kind Kind, param string, want string, cause error) *Error {
	return &Error{Kind: kind, Param: param, Want: want, Index: -1, cause: cause}
}

// Sentinel errors for streaming conditions that carry no parameter
// context; compare with errors.Is.
var (
	ErrClosed       = &Error{Kind: Closed, Want: "stream not yet closed", Index: -1}
	ErrCancelled    = &Error{Kind: Cancelled, Want: "stream not cancelled", Index: -1}
	ErrTimeout      = &Error{Kind: Timeout, Want: "flush to finish before deadline", Index: -1}
	ErrBackPressure = &Error{Kind: BackPressure, Want: "output queue below high-water mark", Index: -1}
)

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
