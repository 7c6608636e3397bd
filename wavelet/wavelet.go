// Package wavelet provides the immutable wavelet descriptor catalog used
// by the MODWT kernel: orthogonal families (Haar, Daubechies, Symlet,
// Coiflet) and biorthogonal spline wavelets, looked up by canonical name.
//
// Reference: I. Daubechies, "Orthonormal Bases of Compactly Supported
// Wavelets", Comm. Pure Appl. Math. 41 (1988).
package wavelet

import (
	"fmt"
	"math"

	"github.com/gowavelet/modwt/modwterr"
)

// Kind tags whether decomposition and reconstruction share filters.
type Kind int

const (
	// Orthogonal wavelets satisfy h̃=h, g̃=g.
	Orthogonal Kind = iota
	// Biorthogonal wavelets carry independent decomposition and
	// reconstruction filter pairs.
	Biorthogonal
)

func (k Kind) String() string {
	if k == Biorthogonal {
		return "biorthogonal"
	}
	return "orthogonal"
}

// l2Tolerance bounds how far Σh² may sit from 1 after normalization
// before construction is rejected (spec §4.1).
const l2Tolerance = 2e-10

// qmrTolerance bounds the quadrature-mirror residual (spec §4.1).
const qmrTolerance = 1e-10

// Wavelet is an immutable, process-lifetime filter descriptor. Filter
// arrays are shared by every caller; none of the MODWT packages mutate
// them.
type Wavelet struct {
	name string
	kind Kind

	hDec []float64
	gDec []float64
	hRec []float64
	gRec []float64
}

// Name returns the wavelet's canonical catalog name.
func (w *Wavelet) Name() string { return w.name }

// Kind reports whether the wavelet is orthogonal or biorthogonal.
func (w *Wavelet) Kind() Kind { return w.kind }

// Length returns the tap count L of the decomposition low-pass filter.
// For biorthogonal wavelets the other filters may have a different length.
func (w *Wavelet) Length() int { return len(w.hDec) }

// HDec returns the decomposition low-pass (scaling) filter taps.
func (w *Wavelet) HDec() []float64 { return w.hDec }

// GDec returns the decomposition high-pass (wavelet) filter taps.
func (w *Wavelet) GDec() []float64 { return w.gDec }

// HRec returns the reconstruction low-pass filter taps. Equal to HDec
// for orthogonal wavelets.
func (w *Wavelet) HRec() []float64 { return w.hRec }

// GRec returns the reconstruction high-pass filter taps. Equal to GDec
// for orthogonal wavelets.
func (w *Wavelet) GRec() []float64 { return w.gRec }

// l2Norm returns Σx².
func l2Norm(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// normalize rescales x in place so Σx²=1.
func normalize(x []float64) {
	n := math.Sqrt(l2Norm(x))
	if n == 0 {
		return
	}
	for i := range x {
		x[i] /= n
	}
}

// qmr derives a high-pass filter from a low-pass filter via the
// quadrature mirror relation g[k] = (-1)^k * h[L-1-k] (spec §3).
func qmr(h []float64) []float64 {
	l := len(h)
	g := make([]float64, l)
	for k := 0; k < l; k++ {
		sign := 1.0
		if k%2 != 0 {
			sign = -1.0
		}
		g[k] = sign * h[l-1-k]
	}
	return g
}

// newOrthogonal builds an orthogonal Wavelet from a scaling filter. The
// filter is normalized to unit energy, the wavelet filter is derived via
// qmr, and h̃=h, g̃=g per the orthogonal invariant.
func newOrthogonal(name string, h []float64) (*Wavelet, error) {
	if len(h) < 2 {
		return nil, modwterr.New(modwterr.InvalidWavelet, "taps", len(h), "length >= 2")
	}
	hCopy := append([]float64(nil), h...)
	normalize(hCopy)
	g := qmr(hCopy)

	w := &Wavelet{
		name: name,
		kind: Orthogonal,
		hDec: hCopy,
		gDec: g,
		hRec: hCopy,
		gRec: g,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// newBiorthogonal builds a biorthogonal Wavelet from independent
// decomposition and reconstruction scaling filters. Both are normalized
// to unit energy; the corresponding wavelet filters are derived from the
// opposite scaling filter, the standard biorthogonal QMR relation.
func newBiorthogonal(name string, hDec, hRec []float64) (*Wavelet, error) {
	if len(hDec) < 2 || len(hRec) < 2 {
		return nil, modwterr.New(modwterr.InvalidWavelet, "taps", 0, "length >= 2 for both filter pairs")
	}
	dec := append([]float64(nil), hDec...)
	rec := append([]float64(nil), hRec...)
	normalize(dec)
	normalize(rec)

	w := &Wavelet{
		name: name,
		kind: Biorthogonal,
		hDec: dec,
		gDec: qmr(rec),
		hRec: rec,
		gRec: qmr(dec),
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// validate checks the L2-normalization and quadrature-mirror invariants
// required by spec §4.1 and §8 property 2.
func (w *Wavelet) validate() error {
	for _, pair := range []struct {
		name string
		f    []float64
	}{{"hDec", w.hDec}, {"gDec", w.gDec}, {"hRec", w.hRec}, {"gRec", w.gRec}} {
		if diff := math.Abs(l2Norm(pair.f) - 1); diff > l2Tolerance {
			return modwterr.New(modwterr.InvalidWavelet, pair.name, l2Norm(pair.f),
				fmt.Sprintf("L2 norm within %.e of 1", l2Tolerance))
		}
	}

	// Quadrature mirror residual between the decomposition pair, using
	// the reconstruction low-pass as the QMR source for biorthogonal
	// wavelets and the decomposition low-pass for orthogonal ones.
	src := w.hRec
	residual := 0.0
	expected := qmr(src)
	for i := range w.gDec {
		d := w.gDec[i] - expected[i]
		residual += d * d
	}
	if math.Sqrt(residual) > qmrTolerance {
		return modwterr.New(modwterr.InvalidWavelet, "gDec", math.Sqrt(residual),
			fmt.Sprintf("quadrature mirror residual within %.e", qmrTolerance))
	}
	return nil
}
