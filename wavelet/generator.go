package wavelet

import "math/cmplx"

// generateExtremalPhase constructs the length-2*order extremal-phase
// Daubechies scaling filter for vanishing-moment count `order`, using
// the standard maximally-flat spectral factorization (Daubechies,
// 1988, §6): the squared magnitude response factors as
//
//	|H(z)|² = ((1+z)/2)^N · ((1+1/z)/2)^N · P(y(z))
//
// where y(z) = (2-z-1/z)/4 and P is the maxflat polynomial with
// binomial coefficients P(y) = Σ C(N-1+k,k) y^k. The ((1+z)/2)^N
// factor is already a minimum-phase spectral factor (all roots at
// z=-1); P(y(z)) is factored into a degree-(N-1) minimum-phase
// polynomial by finding its roots and keeping those inside the unit
// disk. This is used for the higher-order family members (db11..db20,
// sym9..sym20) that the catalog does not hand-tabulate.
//
// The catalog only relies on the result being a valid, well-conditioned
// orthonormal filter (checked by Wavelet.validate after normalization
// and QMR derivation), not on bit-exact agreement with a reference
// table, so the iterative root finder's numerical precision does not
// threaten any spec invariant.
func generateExtremalPhase(order int) ([]float64, error) {
	n := order

	// Step 1: maxflat polynomial P(y) coefficients, p[k] = C(n-1+k, k).
	p := make([]float64, n)
	for k := 0; k < n; k++ {
		p[k] = binomial(n-1+k, k)
	}

	// Step 2: substitute y = (2 - z - 1/z)/4 and accumulate B(z) as a
	// Laurent polynomial centered at exponent 0, spanning [-(n-1), n-1].
	// q represents (2-z-1/z)/4: coefficients for exponents -1,0,1.
	q := laurent{minExp: -1, coeffs: []float64{-0.25, 0.5, -0.25}}
	b := laurent{minExp: 0, coeffs: []float64{0}}
	term := laurent{minExp: 0, coeffs: []float64{1}} // q^0
	for k := 0; k < n; k++ {
		b = b.addScaled(term, p[k])
		term = term.mul(q)
	}

	// Step 3: B(z)*z^(n-1) is an ordinary polynomial of degree 2n-2.
	ordinary := make([]float64, 2*n-1)
	for exp := b.minExp; exp < b.minExp+len(b.coeffs); exp++ {
		ordinary[exp-b.minExp] = b.coeffs[exp-b.minExp]
	}

	if len(ordinary) <= 1 {
		// n==1 (Haar-equivalent order): P is constant, no roots to find.
		return binomialFilter(n), nil
	}

	roots := durandKerner(ordinary, 300)

	// Step 4: keep the n-1 roots of smallest magnitude as the
	// minimum-phase spectral factor's roots.
	sortByMagnitude(roots)
	chosen := roots[:n-1]

	// Step 5: Q_P(z) = Π (z - r_i), built via repeated complex convolution.
	qp := []complex128{1}
	for _, r := range chosen {
		qp = convolveComplex(qp, []complex128{-r, 1})
	}
	qpReal := make([]float64, len(qp))
	for i, c := range qp {
		qpReal[i] = real(c)
	}

	// Step 6: convolve with (1+z)^n, coefficients C(n,k).
	onePlusZ := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		onePlusZ[k] = binomial(n, k)
	}
	h := convolveReal(onePlusZ, qpReal)
	return h, nil
}

// binomialFilter handles the degenerate order==1 case (the Haar
// filter), where the maxflat polynomial is the constant 1.
func binomialFilter(n int) []float64 {
	h := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		h[k] = binomial(n, k)
	}
	return h
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

// laurent is a Laurent polynomial with real coefficients, stored as a
// dense slice covering [minExp, minExp+len(coeffs)-1].
type laurent struct {
	minExp int
	coeffs []float64
}

func (a laurent) mul(b laurent) laurent {
	out := make([]float64, len(a.coeffs)+len(b.coeffs)-1)
	for i, av := range a.coeffs {
		if av == 0 {
			continue
		}
		for j, bv := range b.coeffs {
			out[i+j] += av * bv
		}
	}
	return laurent{minExp: a.minExp + b.minExp, coeffs: out}
}

// addScaled returns a + scale*b, aligning exponent ranges.
func (a laurent) addScaled(b laurent, scale float64) laurent {
	lo := min(a.minExp, b.minExp)
	hi := max(a.minExp+len(a.coeffs), b.minExp+len(b.coeffs))
	out := make([]float64, hi-lo)
	for i, v := range a.coeffs {
		out[a.minExp-lo+i] += v
	}
	for i, v := range b.coeffs {
		out[b.minExp-lo+i] += scale * v
	}
	return laurent{minExp: lo, coeffs: out}
}

func convolveReal(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

func convolveComplex(a, b []complex128) []complex128 {
	out := make([]complex128, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// durandKerner finds all roots of the polynomial with real coefficients
// ordinary (ordinary[i] is the coefficient of z^i) using the
// Durand-Kerner (Weierstrass) simultaneous iteration method.
func durandKerner(ordinary []float64, iterations int) []complex128 {
	degree := len(ordinary) - 1
	// Monic form: divide through by the leading coefficient.
	lead := ordinary[degree]
	coeffs := make([]complex128, len(ordinary))
	for i, v := range ordinary {
		coeffs[i] = complex(v/lead, 0)
	}

	roots := make([]complex128, degree)
	seed := complex(0.4, 0.9)
	p := complex(1.0, 0.0)
	for i := range roots {
		p *= seed
		roots[i] = p
	}

	evalPoly := func(z complex128) complex128 {
		result := complex128(0)
		for i := degree; i >= 0; i-- {
			result = result*z + coeffs[i]
		}
		return result
	}

	for iter := 0; iter < iterations; iter++ {
		next := make([]complex128, degree)
		for i := range roots {
			denom := complex128(1)
			for j := range roots {
				if i == j {
					continue
				}
				denom *= roots[i] - roots[j]
			}
			if cmplx.Abs(denom) == 0 {
				next[i] = roots[i]
				continue
			}
			next[i] = roots[i] - evalPoly(roots[i])/denom
		}
		roots = next
	}
	return roots
}

func sortByMagnitude(roots []complex128) {
	for i := 1; i < len(roots); i++ {
		for j := i; j > 0 && cmplx.Abs(roots[j]) < cmplx.Abs(roots[j-1]); j-- {
			roots[j], roots[j-1] = roots[j-1], roots[j]
		}
	}
}
