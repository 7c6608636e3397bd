// Package modwt implements the forward and inverse single-level Maximal
// Overlap Discrete Wavelet Transform (spec §4.3): non-decimated,
// shift-invariant, same-length-in-same-length-out filtering via
// circular-style convolution under a selectable boundary extension.
package modwt

// SingleLevelResult pairs the approximation (low-pass) and detail
// (high-pass) coefficient sequences produced by one level of MODWT.
// Both arrays are exactly the length of the signal that produced them
// (spec §3).
type SingleLevelResult struct {
	Approx []float64
	Detail []float64
}

// Len returns the shared coefficient array length N.
func (r *SingleLevelResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Approx)
}
