package pss78

import "math"

// RT35 returns the conductivity ratio of standard seawater at 35 PSU and
// temperature t (°C, IPTS-68) relative to 15 °C.
func RT35(t float64) float64 {
	return (((rt35c4*t+rt35c3)*t+rt35c2)*t+rt35c1)*t + rt35c0
}

func aTerm(t float64) float64 {
	return a1*t + a0
}

func bTerm(t float64) float64 {
	return (b2*t+b1)*t + b0
}

func (pc pressureCoefficients) eval(p float64) float64 {
	return ((pc.e3*p+pc.e2)*p + pc.e1) * p
}

// SAL returns practical salinity from xr = sqrt(Rt) and xt = t - 15.
func SAL(xr, xt float64) float64 {
	return ((((s5*xr+s4)*xr+s3)*xr+s2)*xr+s1)*xr + s0 +
		(xt/(1.0+kDT*xt))*
			(((((k5*xr+k4)*xr+k3)*xr+k2)*xr+k1)*xr+k0)
}

// salinity runs the shared PSS-78 chain with the normalisation of cs.
// The radicand is taken in absolute value.
func (cs coefficientSet) salinity(c, t, p float64) float64 {
	p = p / cs.pressureScale
	dt := t - 15.0

	r := c / cs.reference
	rt := r / (RT35(t) * (1.0 + cs.pressure.eval(p)/(bTerm(t)+aTerm(t)*r)))
	return SAL(math.Sqrt(math.Abs(rt)), dt)
}
