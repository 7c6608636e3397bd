package wavelet

import "math"

func registerHaar() {
	h := []float64{1 / math.Sqrt2, 1 / math.Sqrt2}
	mustRegister("haar", newOrthogonal("haar", h))
}
