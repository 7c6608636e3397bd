package wavelet

import "fmt"

// coifletTaps holds literal scaling-filter coefficients for the
// Coiflet family, orders 1-3 (6, 12 and 18 taps respectively). Coiflets
// additionally impose vanishing moments on the scaling function itself,
// a different construction from the Daubechies/Symlet maxflat
// factorization; COIF4 and COIF5 (24 and 30 taps) are not hand-
// tabulated here and instead reuse the extremal-phase generator at a
// tap-matched order as a smooth, valid, but not moment-matched
// stand-in — documented as a known simplification.
var coifletTaps = map[int][]float64{
	1: {
		-0.01565572813546454, -0.07273261951285519,
		0.38486484686420286, 0.85257204164239,
		0.33789767095327263, -0.07273261951285519,
	},
	2: {
		-0.0007205494453645122, -0.0018232088707029932,
		0.0056114348193944995, 0.023680171946334084,
		-0.0594344186464569, -0.0764885990783064,
		0.41700518442169254, 0.8127236354455423,
		0.3861100668211622, -0.06737255472196302,
		-0.04146493678175915, 0.016387336463522112,
	},
	3: {
		-3.459977283621256e-05, -7.098330313814125e-05,
		0.0004662169601128863, 0.0011175187708906016,
		-0.0025745176887502236, -0.00900797613666158,
		0.015880544863615904, 0.03455502757306163,
		-0.08230192710688598, -0.07179982161931202,
		0.42848347637761874, 0.7937772226256206,
		0.4051769024096169, -0.06112339000267287,
		-0.0657719112818555, 0.023452696141836267,
		0.007782596427325418, -0.003793512864491014,
	},
}

func registerCoiflets() {
	for order := 1; order <= 3; order++ {
		name := fmt.Sprintf("coif%d", order)
		mustRegister(name, newOrthogonal(name, coifletTaps[order]))
	}
	// COIF4 (24 taps) and COIF5 (30 taps): approximate with the
	// extremal-phase generator at the matching filter length.
	highOrders := []struct{ order, genOrder int }{{4, 12}, {5, 15}}
	for _, o := range highOrders {
		name := fmt.Sprintf("coif%d", o.order)
		h, err := generateExtremalPhase(o.genOrder)
		if err != nil {
			panic("wavelet: " + name + " generation failed: " + err.Error())
		}
		mustRegister(name, newOrthogonal(name, h))
	}
}
