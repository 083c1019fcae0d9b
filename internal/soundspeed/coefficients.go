package soundspeed

// Chen-Millero pure-water block Cw(T, P).
const (
	c00 = 1402.388
	c01 = 5.03830
	c02 = -5.81090e-2
	c03 = 3.3432e-4
	c04 = -1.47797e-6
	c05 = 3.1419e-9
	c10 = 0.153563
	c11 = 6.8999e-4
	c12 = -8.1829e-6
	c13 = 1.3632e-7
	c14 = -6.1260e-10
	c20 = 3.1260e-5
	c21 = -1.7111e-6
	c22 = 2.5986e-8
	c23 = -2.5353e-10
	c24 = 1.0415e-12
	c30 = -9.7729e-9
	c31 = 3.8513e-10
	c32 = -2.3654e-12
)

// Linear salinity block A(T, P).
const (
	a00 = 1.389
	a01 = -1.262e-2
	a02 = 7.166e-5
	a03 = 2.008e-6
	a04 = -3.21e-8
	a10 = 9.4742e-5
	a11 = -1.2583e-5
	a12 = -6.4928e-8
	a13 = 1.0515e-8
	a14 = -2.0142e-10
	a20 = -3.9064e-7
	a21 = 9.1061e-9
	a22 = -1.6009e-10
	a23 = 7.994e-12
	a30 = 1.100e-10
	a31 = 6.651e-12
	a32 = -3.391e-13
)

// S^1.5 block B(T, P) and S^2 block D(P).
const (
	b00 = -1.922e-2
	b01 = -4.42e-5
	b10 = 7.3637e-5
	b11 = 1.7950e-7

	d00 = 1.727e-3
	d10 = -7.9836e-6
)

// Nine-term fit.
const (
	m0   = 1402.5
	mT1  = 5.0
	mT2  = -5.44e-2
	mT3  = 2.1e-4
	mS   = 1.33
	mST  = -1.23e-2
	mST2 = 8.7e-5
	mZ1  = 1.56e-2
	mZ2  = 2.55e-7
	mZ3  = -7.3e-12
	mLat = 1.2e-6
	mTZ3 = -9.5e-13
	mT2Z = 3e-7
	mSZ  = 1.43e-5

	referenceLatitude = 45.0
)
