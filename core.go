package ht

import "math"

/*
Calculates the log-mean temperature difference for a heat exchanger.

	Args:
		Thi: inlet temperature of the hot fluid, K
		Tho: outlet temperature of the hot fluid, K
		Tci: inlet temperature of the cold fluid, K
		Tco: outlet temperature of the cold fluid, K
		counterflow: whether the exchanger is counterflow or parallel flow

	Returns:
		log-mean temperature difference, K

	Notes:
		Any consistent set of units gives a consistent result.
		Both temperature differences must be of the same sign for the
		logarithm to be defined; no check is made.
*/
func LMTD(Thi, Tho, Tci, Tco float64, counterflow bool) float64 {
	var dTF1, dTF2 float64
	if counterflow {
		dTF1 = Thi - Tco
		dTF2 = Tho - Tci
	} else {
		dTF1 = Thi - Tci
		dTF2 = Tho - Tco
	}
	return (dTF2 - dTF1) / math.Log(dTF2/dTF1)
}

/*
Calculates the efficiency of an annular fin of constant thickness by the
method of Kern and Kraus, using modified Bessel functions.

	Args:
		Do: outer diameter of the bare tube, m
		D_fin: outer diameter of the fin, m
		t_fin: thickness of the fin, m
		k_fin: thermal conductivity of the fin, W/m/K
		h: heat transfer coefficient of the gas surrounding the fin, W/m2/K

	Returns:
		fin efficiency, -
*/
func Fin_efficiency_Kern_Kraus(Do, D_fin, t_fin, k_fin, h float64) float64 {
	re := 0.5 * D_fin
	ro := 0.5 * Do
	m := math.Sqrt(2.0 * h / (k_fin * t_fin))
	mre := m * re
	mro := m * ro
	x0 := _i1(mre)*_k1(mro) - _k1(mre)*_i1(mro)
	x1 := _i0(mro)*_k1(mre) + _i1(mre)*_k0(mro)
	return 2.0 * ro / (m * (re*re - ro*ro)) * x0 / x1
}
