package pss78

// rt35 polynomial: C(35,t,0)/C(35,15,0).
const (
	rt35c0 = 0.6766097
	rt35c1 = 2.00564e-2
	rt35c2 = 1.104259e-4
	rt35c3 = -6.9698e-7
	rt35c4 = 1.0031e-9
)

// Temperature correction terms of the pressure ratio (Lewis 1980 B3, B4
// via a(t), and b(t)).
const (
	a0 = 0.4215
	a1 = -3.107e-3

	b0 = 1.0
	b1 = 3.426e-2
	b2 = 4.464e-4
)

// Salinity polynomial in sqrt(Rt), and its temperature correction.
const (
	s0 = 0.0080
	s1 = -0.1692
	s2 = 25.3851
	s3 = 14.0941
	s4 = -7.0261
	s5 = 2.7081

	k0 = 0.0005
	k1 = -0.0056
	k2 = -0.0066
	k3 = -0.0375
	k4 = 0.0636
	k5 = -0.0144

	kDT = 0.0162
)

// pressureCoefficients hold the A1-A3 constants of the c(p) polynomial.
type pressureCoefficients struct {
	e1, e2, e3 float64
}

// coefficientSet is the per-variant calibration: how the raw inputs are
// normalised before the shared rt35/a/b/sal chain.
type coefficientSet struct {
	reference     float64 // conductivity divisor
	pressureScale float64 // pressure divisor applied before c(p)
	pressure      pressureCoefficients
}

// The two sets come from independent sources. Their c(p) coefficients differ
// by 10, 100 and 1000 per power of p, matching their pressure scales.
var (
	directCoefficients = coefficientSet{
		reference:     1.0,
		pressureScale: 10,
		pressure:      pressureCoefficients{e1: 2.070e-4, e2: -6.370e-8, e3: 3.989e-12},
	}
	ratioCoefficients = coefficientSet{
		reference:     4.2914,
		pressureScale: 1,
		pressure:      pressureCoefficients{e1: 2.070e-5, e2: -6.370e-10, e3: 3.989e-15},
	}
)
