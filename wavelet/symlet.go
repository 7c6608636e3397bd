package wavelet

import "fmt"

// symletTaps holds literal scaling-filter coefficients for the
// near-symmetric Symlet family, orders 2-8. Orders 2 and 3 coincide
// with Daubechies db2/db3 (there is only one admissible root choice at
// those lengths); from order 4 the roots are chosen to minimize phase
// nonlinearity instead of the extremal-phase criterion Daubechies uses.
var symletTaps = map[int][]float64{
	2: daubechiesTaps[2],
	3: daubechiesTaps[3],
	4: {
		-0.07576571478927333, -0.02963552764599851,
		0.49761866763201545, 0.8037387518059161,
		0.29785779560527736, -0.09921954357684722,
		-0.012603967262037833, 0.0322231006040427,
	},
	5: {
		0.027333068345077982, 0.029519490925774643,
		-0.039134249302383094, 0.1993975339773936,
		0.7234076904024206, 0.6339789634582119,
		0.01660210576452232, -0.17532808990845047,
		-0.021101834024758855, 0.019538882735286728,
	},
	6: {
		0.015404109327027373, 0.0034907120842174702,
		-0.11799011114819057, -0.048311742585633,
		0.4910559419267466, 0.787641141030194,
		0.3379294217276218, -0.07263752278646252,
		-0.021060292512300564, 0.04472490177066578,
		0.0017677118642428036, -0.007800708325034148,
	},
	7: {
		0.002681814568257878, -0.0010473848886829163,
		-0.01263630340325193, 0.03051551316596357,
		0.0678926935013727, -0.049552834937127255,
		0.017441255086855827, 0.5361019170917628,
		0.767764317003164, 0.2886296317515146,
		-0.14004724044296152, -0.10780823770381774,
		0.004010244871533663, 0.010268176708511255,
	},
	8: {
		-0.0033824159510061256, -0.0005421323317911481,
		0.03169508781149298, 0.007607487324917605,
		-0.1432942383508097, -0.061273359067658524,
		0.4813596512583722, 0.7771857517005235,
		0.3644418948353314, -0.05194583810770904,
		-0.027219029917056003, 0.049137179673607506,
		0.003808752013890615, -0.01495225833704823,
		-0.0003029205147213668, 0.0018899503327594609,
	},
}

// registerSymlets registers the literal Symlet orders and extends the
// family up to SYM20 with the same extremal-phase generator used for
// the high-order Daubechies wavelets (generator.go). sym9..sym20 are
// therefore the extremal-phase Daubechies filters of those orders; no
// least-asymmetric root selection is made for them.
func registerSymlets() {
	for order := 2; order <= 8; order++ {
		name := fmt.Sprintf("sym%d", order)
		mustRegister(name, newOrthogonal(name, symletTaps[order]))
	}
	for order := 9; order <= 20; order++ {
		name := fmt.Sprintf("sym%d", order)
		h, err := generateExtremalPhase(order)
		if err != nil {
			panic("wavelet: sym" + fmt.Sprint(order) + " generation failed: " + err.Error())
		}
		mustRegister(name, newOrthogonal(name, h))
	}
}
