package special

import "math"

// BesselKFunc evaluates the modified Bessel function of the second kind K_n(x).
type BesselKFunc func(n int, x float64) float64

var _ BesselKFunc = BesselK

// BesselK returns K_n(x) for integer order n >= 0 and x > 0, NaN otherwise.
// K_0 and K_1 use the polynomial approximations of Abramowitz & Stegun
// 9.8.5-9.8.8 (relative error below 2e-7), higher orders the upward recurrence
// K_{n+1} = K_{n-1} + (2n/x) K_n, which is stable for K.
func BesselK(n int, x float64) float64 {
	switch {
	case n < 0 || !(x > 0):
		return math.NaN()
	case math.IsInf(x, 1):
		return 0
	}
	k0, k1 := besselK0(x), besselK1(x)
	if n == 0 {
		return k0
	}
	for j := 1; j < n; j++ {
		k0, k1 = k1, k0+2*float64(j)/x*k1
	}
	return k1
}

func besselI0(x float64) float64 {
	t := x / 3.75
	t *= t
	return 1 + t*(3.5156229+t*(3.0899424+t*(1.2067492+
		t*(0.2659732+t*(0.0360768+t*0.0045813)))))
}

func besselI1(x float64) float64 {
	t := x / 3.75
	t *= t
	return x * (0.5 + t*(0.87890594+t*(0.51498869+t*(0.15084934+
		t*(0.02658733+t*(0.00301532+t*0.00032411))))))
}

func besselK0(x float64) float64 {
	if x <= 2 {
		y := 0.25 * x * x
		return -math.Log(0.5*x)*besselI0(x) + (-0.57721566 + y*(0.42278420+
			y*(0.23069756+y*(0.03488590+y*(0.00262698+y*(0.00010750+y*0.00000740))))))
	}
	z := 2 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + z*(-0.07832358+
		z*(0.02189568+z*(-0.01062446+z*(0.00587872+z*(-0.00251540+z*0.00053208))))))
}

func besselK1(x float64) float64 {
	if x <= 2 {
		y := 0.25 * x * x
		return math.Log(0.5*x)*besselI1(x) + (1/x)*(1+y*(0.15443144+
			y*(-0.67278579+y*(-0.18156897+y*(-0.01919402+y*(-0.00110404+y*(-0.00004686)))))))
	}
	z := 2 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + z*(0.23498619+
		z*(-0.03655620+z*(0.01504268+z*(-0.00780353+z*(0.00325614+z*(-0.00068245)))))))
}
