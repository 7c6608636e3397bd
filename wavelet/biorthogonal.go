package wavelet

// Biorthogonal spline wavelets carry independent decomposition and
// reconstruction scaling filters (spec §3, §9 "tagged variant"). Both
// entries below are the classical (non-lifting) FIR form of wavelets
// also used, in lifting form, by JPEG 2000: CDF 5/3 (reversible,
// "Le Gall 5/3") and CDF 9/7 (irreversible, Cohen-Daubechies-Feauveau).
// Registering them here, rather than only as lifting steps, keeps the
// MODWT kernel's convolution-based forward/inverse uniform across every
// cataloged wavelet (spec §4.3 has no lifting-scheme path; lifting
// codecs are an explicit Non-goal).
func registerBiorthogonal() {
	// CDF 5/3: hDec taps proportional to [-1,2,6,2,-1]/8, hRec taps
	// proportional to [1,2,1]/4.
	cdf53Dec := []float64{-1, 2, 6, 2, -1}
	cdf53Rec := []float64{1, 2, 1}
	mustRegister("bior2.2", newBiorthogonal("bior2.2", cdf53Dec, cdf53Rec))

	// CDF 9/7: the JPEG 2000 Annex F.3 analysis/synthesis lowpass pair.
	cdf97Dec := []float64{
		0.026748757411, -0.016864118443, -0.078223266529, 0.266864118443,
		0.602949018236, 0.266864118443, -0.078223266529, -0.016864118443,
		0.026748757411,
	}
	cdf97Rec := []float64{
		-0.091271763114, -0.057543526229, 0.591271763114, 1.11508705,
		0.591271763114, -0.057543526229, -0.091271763114,
	}
	mustRegister("bior4.4", newBiorthogonal("bior4.4", cdf97Dec, cdf97Rec))
}
