package ht

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLMTD(t *testing.T) {
	assert.InEpsilon(t, 43.200409294131525, LMTD(100., 60., 30., 40.2, true), 1e-12)
	assert.InEpsilon(t, 39.75251118049003, LMTD(100., 60., 30., 40.2, false), 1e-12)
}

func TestLMTD_equal_ends(t *testing.T) {
	// equal temperature differences at both ends make log(1) = 0; the
	// 0/0 propagates as NaN, it is not special cased
	assert.True(t, math.IsNaN(LMTD(100., 60., 20., 60., true)))
}

func TestFin_efficiency_Kern_Kraus(t *testing.T) {
	eta := Fin_efficiency_Kern_Kraus(0.0254, 0.05715, 3.8e-4, 200., 58.)
	assert.InEpsilon(t, 0.8412588886073034, eta, 1e-9)
	assert.Greater(t, eta, 0.0)
	assert.Less(t, eta, 1.0)
}

func TestReynolds(t *testing.T) {
	assert.InEpsilon(t, 38200.65789473684, Reynolds(2.5, 0.25, 1.1613, 1.9e-5), 1e-12)
}

func TestPrandtl(t *testing.T) {
	assert.InEpsilon(t, 0.7355214922952149, Prandtl(1637., 5.54e-5, 0.1233), 1e-12)
}
