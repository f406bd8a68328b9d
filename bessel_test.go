package ht

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values evaluated with the same Abramowitz and Stegun
// approximations; the branch switch sits at 3.75 for I and 2.0 for K.
func TestBessel_i0(t *testing.T) {
	cases := map[float64]float64{
		0.1:  1.0025015614596955,
		1.0:  1.2660658480342601,
		2.0:  2.279585307296026,
		3.0:  4.880792565033293,
		5.0:  27.239871894394888,
		10.0: 2815.7166648041534,
	}
	for x, want := range cases {
		assert.InEpsilon(t, want, _i0(x), 1e-12, "x=%v", x)
	}
	assert.Equal(t, 1.0, _i0(0.0))
}

func TestBessel_i1(t *testing.T) {
	cases := map[float64]float64{
		0.1:  0.0500625260252779,
		1.0:  0.5651590975819435,
		2.0:  1.5906368572633083,
		3.0:  3.953370217142917,
		5.0:  24.335641845705506,
		10.0: 2670.988320559247,
	}
	for x, want := range cases {
		assert.InEpsilon(t, want, _i1(x), 1e-12, "x=%v", x)
		// odd function
		assert.Equal(t, -_i1(x), _i1(-x))
	}
	assert.Equal(t, 0.0, _i1(0.0))
}

func TestBessel_k0(t *testing.T) {
	cases := map[float64]float64{
		0.1:  2.427069024858024,
		1.0:  0.421024421083418,
		2.0:  0.11389388,
		3.0:  0.03473950439930018,
		5.0:  0.0036910983819603066,
		10.0: 1.7780061933126626e-05,
	}
	for x, want := range cases {
		assert.InEpsilon(t, want, _k0(x), 1e-12, "x=%v", x)
	}
}

func TestBessel_k1(t *testing.T) {
	cases := map[float64]float64{
		0.1:  9.853844783600913,
		1.0:  0.6019072316669057,
		2.0:  0.13986588,
		3.0:  0.04015643124391746,
		5.0:  0.004044613383208274,
		10.0: 1.8648773946849075e-05,
	}
	for x, want := range cases {
		assert.InEpsilon(t, want, _k1(x), 1e-12, "x=%v", x)
	}
}
