package multilevel

// MutableResult wraps a Result and exposes direct, in-place access to
// its detail buffers for the denoising layer (spec §9: "mutable
// multi-level result... maps to a container that permits explicit
// get_mutable_detail(level) access under a documented ownership
// transfer; callers must not retain aliases after inverse").
//
// GetMutableDetail returns the live backing array, not a copy. Once a
// MutableResult has been passed to Inverse, the caller must not read or
// write any slice it obtained from GetMutableDetail; ownership of those
// buffers transfers to the reconstruction it produced.
type MutableResult struct {
	result *Result
}

// NewMutableResult wraps result for in-place detail shrinkage. result
// must not be used through its own accessors concurrently with the
// returned MutableResult.
func NewMutableResult(result *Result) *MutableResult {
	return &MutableResult{result: result}
}

// GetMutableDetail returns the live detail_j buffer (1-indexed) for
// in-place editing, or nil if j is out of range.
func (m *MutableResult) GetMutableDetail(j int) []float64 {
	if m == nil || m.result == nil || j < 1 || j > len(m.result.Details) {
		return nil
	}
	return m.result.Details[j-1].Detail
}

// Levels reports the wrapped result's decomposition depth.
func (m *MutableResult) Levels() int {
	if m == nil || m.result == nil {
		return 0
	}
	return m.result.Levels
}

// Result returns the underlying Result. Callers must treat its detail
// buffers as consumed once GetMutableDetail has been used to edit them
// and the result has been passed to Inverse.
func (m *MutableResult) Result() *Result {
	if m == nil {
		return nil
	}
	return m.result
}
