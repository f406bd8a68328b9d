package ht

import "math"

// Modified Bessel functions of the first and second kind, orders 0 and 1.
// Polynomial approximations from Abramowitz and Stegun, sections 9.8.1-9.8.8.
// Largest relative error is about 2e-7, on the asymptotic branches.

func _i0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		t := x / 3.75
		y := t * t
		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}
	y := 3.75 / ax
	return math.Exp(ax) / math.Sqrt(ax) * (0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}

func _i1(x float64) float64 {
	ax := math.Abs(x)
	var ans float64
	if ax < 3.75 {
		t := x / 3.75
		y := t * t
		ans = ax * (0.5 + y*(0.87890594+y*(0.51498869+y*(0.15084934+y*(0.02658733+y*(0.00301532+y*0.00032411))))))
	} else {
		y := 3.75 / ax
		ans = math.Exp(ax) / math.Sqrt(ax) * (0.39894228 + y*(-0.03988024+y*(-0.00362018+y*(0.00163801+y*(-0.01031555+y*(0.02282967+y*(-0.02895312+y*(0.01787654+y*(-0.00420059)))))))))
	}
	if x < 0 {
		return -ans
	}
	return ans
}

func _k0(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return -math.Log(x/2.0)*_i0(x) + (-0.57721566 + y*(0.42278420+y*(0.23069756+y*(0.03488590+y*(0.00262698+y*(0.00010750+y*0.00000740))))))
	}
	y := 2.0 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + y*(-0.07832358+y*(0.02189568+y*(-0.01062446+y*(0.00587872+y*(-0.00251540+y*0.00053208))))))
}

func _k1(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return math.Log(x/2.0)*_i1(x) + 1.0/x*(1.0+y*(0.15443144+y*(-0.67278579+y*(-0.18156897+y*(-0.01919402+y*(-0.00110404+y*(-0.00004686)))))))
	}
	y := 2.0 / x
	return math.Exp(-x) / math.Sqrt(x) * (1.25331414 + y*(0.23498619+y*(-0.03655620+y*(0.01504268+y*(-0.00780353+y*(0.00325614+y*(-0.00068245)))))))
}
