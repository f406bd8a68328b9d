package ht

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Standard selections for air cooler design. API 661 requires a minimum
// tube OD of 1 inch.
var Fin_densities_inch = []float64{7, 8, 9, 10, 11} // fins/inch

var Fin_densities = []float64{275.6, 315.0, 354.3, 393.7, 433.1} // fins/m

var ODs = []float64{1, 1.25, 1.5, 2} // inch

var Fin_heights = []float64{0.010, 0.012, 0.016} // m

var Tube_orientations = []string{"vertical (inlet at bottom)", "vertical (inlet at top)", "horizontal", "inclined"}

var _fan_diameters = []float64{0.71, 0.8, 0.9, 1.0, 1.2, 1.24, 1.385, 1.585, 1.78, 1.98, 2.22, 2.475, 2.775, 3.12, 3.515, 4.455, 4.95, 5.545, 6.24, 7.03, 7.92, 8.91, 9.9, 10.4, 11.1, 12.4, 13.85, 15.85}

var Fan_ring_types = []string{"straight", "flanged", "bell", "15 degree cone", "30 degree cone"}

var Fin_constructions = []string{"extruded", "embedded", "L-footed", "overlapped L-footed", "externally bonded", "knurled footed"}

var Headers = []string{"plug", "removable cover", "removable bonnet", "welded bonnet"}

var Configurations = []string{"forced draft", "natural draft", "induced-draft (top drive)", "induced-draft (bottom drive)"}

/*
Returns the closest standard fan diameter to the requested one.

	Args:
		D: desired fan diameter, m

	Returns:
		nearest standard fan diameter, m
*/
func Nearest_fan_diameter(D float64) float64 {
	best := _fan_diameters[0]
	for _, d := range _fan_diameters[1:] {
		if math.Abs(d-D) < math.Abs(best-D) {
			best = d
		}
	}
	return best
}

// Coefficients from Roetzel and Nicole (1975), Mean Temperature Difference
// for Heat Exchanger Design - A General Approximate Explicit Equation.
// Checked twice.

var _crossflow_1_row_1_pass = mat.NewDense(4, 4, []float64{
	-4.62e-1, -3.13e-2, -1.74e-1, -4.2e-2,
	5.08e0, 5.29e-1, 1.32e0, 3.47e-1,
	-1.57e1, -2.37e0, -2.93e0, -8.53e-1,
	1.72e1, 3.18e0, 1.99e0, 6.49e-1,
})

var _crossflow_2_rows_1_pass = mat.NewDense(4, 4, []float64{
	-3.34e-1, -1.54e-1, -8.65e-2, 5.53e-2,
	3.3e0, 1.28e0, 5.46e-1, -4.05e-1,
	-8.7e0, -3.35e0, -9.29e-1, 9.53e-1,
	8.7e0, 2.83e0, 4.71e-1, -7.17e-1,
})

var _crossflow_3_rows_1_pass = mat.NewDense(4, 4, []float64{
	-8.74e-2, -3.18e-2, -1.83e-2, 7.1e-3,
	1.05e0, 2.74e-1, 1.23e-1, -4.99e-2,
	-2.45e0, -7.46e-1, -1.56e-1, 1.09e-1,
	3.21e0, 6.68e-1, 6.17e-2, -7.46e-2,
})

var _crossflow_4_rows_1_pass = mat.NewDense(4, 4, []float64{
	-4.14e-2, -1.39e-2, -7.23e-3, 6.1e-3,
	6.15e-1, 1.23e-1, 5.66e-2, -4.68e-2,
	-1.2e0, -3.45e-1, -4.37e-2, 1.07e-1,
	2.06e0, 3.18e-1, 1.11e-2, -7.57e-2,
})

var _crossflow_2_rows_2_pass = mat.NewDense(4, 4, []float64{
	-2.35e-1, -7.73e-2, -5.98e-2, 5.25e-3,
	2.28e0, 6.32e-1, 3.64e-1, -1.27e-2,
	-6.44e0, -1.63e0, -6.13e-1, -1.14e-2,
	6.24e0, 1.35e0, 2.76e-1, 2.72e-2,
})

var _crossflow_3_rows_3_pass = mat.NewDense(4, 4, []float64{
	-8.43e-1, 3.02e-2, 4.8e-1, 8.12e-2,
	5.85e0, -9.64e-3, -3.28e0, -8.34e-1,
	-1.28e1, -2.28e-1, 7.11e0, 2.19e0,
	9.24e0, 2.66e-1, -4.9e0, -1.69e0,
})

var _crossflow_4_rows_4_pass = mat.NewDense(4, 4, []float64{
	-3.39e-1, 2.77e-2, 1.79e-1, -1.99e-2,
	2.38e0, -9.99e-2, -1.21e0, 4e-2,
	-5.26e0, 9.04e-2, 2.62e0, 4.94e-2,
	3.9e0, -8.45e-4, -1.81e0, -9.81e-2,
})

var _crossflow_4_rows_2_pass = mat.NewDense(4, 4, []float64{
	-6.05e-1, 2.31e-2, 2.94e-1, 1.98e-2,
	4.34e0, 5.9e-3, -1.99e0, -3.05e-1,
	-9.72e0, -2.48e-1, 4.32, 8.97e-1,
	7.54e0, 2.87e-1, -3e0, -7.31e-1,
})

/*
Calculates the log-mean temperature difference correction factor for a
crossflow heat exchanger, as in an air cooler. Method of Roetzel and Nicole
(1975), fit to others' nonexplicit work. Error is < 0.1%. Requires the
number of tube rows and tube passes as well as the stream temperatures.

	Ft = 1 - sum_k sum_i a[k][i] * (1-rlm)^(k+1) * sin(2*(i+1)*atan(R))

	R = (Thi - Tho)/(Tco - Tci)

	rlm = dTlm/(Thi - Tci)

	Args:
		Thi: temperature of the hot fluid in, K
		Tho: temperature of the hot fluid out, K
		Tci: temperature of the cold fluid in, K
		Tco: temperature of the cold fluid out, K
		Ntp: number of passes the tubeside fluid will flow through, -
		rows: number of rows of tubes, -

	Returns:
		log-mean temperature difference correction factor, -

	Notes:
		Assumes the hot fluid is tubeside, as in the case of air coolers.
		The model is not symmetric, so switch the inputs around if using
		this function for other purposes.

		16 coefficients are used for each case; 8 cases are tabulated:
		1 row 1 pass, 2 rows 1 pass, 2 rows 2 passes, 3 rows 1 pass,
		3 rows 3 passes, 4 rows 1 pass, 4 rows 2 passes, 4 rows 4 passes.
		Untabulated combinations reuse a tabulated case; see the selection
		below for which one.

		No validation is performed. Tco == Tci makes R undefined and the
		result NaN or Inf.
*/
func Ft_aircooler(Thi, Tho, Tci, Tco float64, Ntp, rows int) float64 {
	dTlm := LMTD(Thi, Tho, Tci, Tco, true)
	rlm := dTlm / (Thi - Tci)
	R := (Thi - Tho) / (Tco - Tci)

	var coefs *mat.Dense
	switch {
	case Ntp == 1 && rows == 1:
		coefs = _crossflow_1_row_1_pass
	case Ntp == 1 && rows == 2:
		coefs = _crossflow_2_rows_1_pass
	case Ntp == 1 && rows == 3:
		coefs = _crossflow_3_rows_1_pass
	case Ntp == 1 && rows == 4:
		coefs = _crossflow_4_rows_1_pass
	case Ntp == 1 && rows > 4:
		// a reasonable assumption
		coefs = _crossflow_4_rows_1_pass
	case Ntp == 2 && rows == 2:
		coefs = _crossflow_2_rows_2_pass
	case Ntp == 3 && rows == 3:
		coefs = _crossflow_3_rows_3_pass
	case Ntp == 4 && rows == 4:
		coefs = _crossflow_4_rows_4_pass
	case Ntp > 4 && rows > 4 && Ntp == rows:
		// a reasonable assumption
		coefs = _crossflow_4_rows_4_pass
	case Ntp == 2 && rows == 4:
		coefs = _crossflow_4_rows_2_pass
	default:
		// a bad assumption, but something has to be picked
		coefs = _crossflow_4_rows_2_pass
	}

	tot := 0.0
	atanR := math.Atan(R)
	for k := 0; k < 4; k++ {
		x0 := math.Pow(1.0-rlm, float64(k)+1.0)
		for i := 0; i < 4; i++ {
			tot += coefs.At(k, i) * x0 * math.Sin(2.0*(float64(i)+1.0)*atanR)
		}
	}
	return 1.0 - tot
}

/*
Calculates the noise generated by an air cooler bay with one fan according
to the GPSA Engineering Data Book.

	PWL [dB(A)] = 56 + 30*log10(tip speed [m/min]/304.8) + 10*log10(power [hp])

	Args:
		tip_speed: tip speed of the air cooler fan blades, m/s
		power: shaft power of the single fan motor, W

	Returns:
		sound pressure level at 1 m from the source, dB(A)

	Notes:
		Internal units are m/min and hp. Both arguments must be positive
		for the logarithms to be defined; no check is made.
*/
func Air_cooler_noise_GPSA(tip_speed, power float64) float64 {
	tip_speed = tip_speed * minute
	power = power / hp
	return 56.0 + 30.0*math.Log10(tip_speed/304.8) + 10.0*math.Log10(power)
}

/*
Calculates the noise generated by an air cooler bay with one fan according
to Mukherjee, Practical Thermal Design of Air-Cooled Heat Exchangers.

	SPL [dB(A)] = 46 + 30*log10(tip speed [m/s]) + 10*log10(power [hp])
	              - 20*log10(D_fan)

	Args:
		tip_speed: tip speed of the air cooler fan blades, m/s
		power: shaft power of the single fan motor, W
		fan_diameter: diameter of the air cooler fan, m
		induced: false for forced draft, true for induced draft

	Returns:
		sound pressure level at 1 m from the source (p0 = 2e-5 Pa), dB(A)

	Notes:
		If the air cooler is induced draft, the sound pressure level is
		reduced by 3 dB.
*/
func Air_cooler_noise_Mukherjee(tip_speed, power, fan_diameter float64, induced bool) float64 {
	noise := 46.0 + 30.0*math.Log10(tip_speed) + 10.0*math.Log10(power/hp) - 20.0*math.Log10(fan_diameter)
	if induced {
		noise -= 3.0
	}
	return noise
}

/*
Calculates the air side heat transfer coefficient for an air cooler or
other finned tube bundle with the formula of Briggs and Young.

	Nu = 0.134*Re^0.681*Pr^(1/3)*(S/h)^0.2*(S/b)^0.1134

	Args:
		m: mass flow rate of air across the tube bank, kg/s
		A: surface area of combined finned and non-finned area exposed for
		   heat transfer, m2
		A_min: minimum air flow area, m2
		A_increase: ratio of actual surface area to bare tube surface area, -
		A_fin: surface area of all the fins in the bundle, m2
		A_tube_showing: area of the bare tube exposed in the bundle, m2
		tube_diameter: diameter of the bare tube, m
		fin_diameter: outer diameter of each tube including the fins, m
		fin_thickness: thickness of the fins, m
		bare_length: length of bare tube between two fins, m
		rho: average density of air across the tube bank, kg/m3
		Cp: average heat capacity of air across the tube bank, J/kg/K
		mu: average viscosity of air across the tube bank, Pa s
		k: average thermal conductivity of air across the tube bank, W/m/K
		k_fin: thermal conductivity of the fin, W/m/K

	Returns:
		air side heat transfer coefficient on a bare-tube surface area
		basis, as if there were no fins present, W/K/m2

	Notes:
		The fit was made for 1000 < Re < 8000, 11.13 mm < Do < 40.89 mm,
		1.42 mm < fin height < 16.57 mm, 0.33 mm < fin thickness < 2.02 mm,
		1.30 mm < fin pitch < 4.06 mm, 24.49 mm < normal pitch < 111 mm.
		Inputs are trusted positive physical quantities; nothing is
		validated.
*/
func H_Briggs_Young(m, A, A_min, A_increase, A_fin, A_tube_showing,
	tube_diameter, fin_diameter, fin_thickness, bare_length,
	rho, Cp, mu, k, k_fin float64) float64 {

	fin_height := 0.5 * (fin_diameter - tube_diameter)

	V_max := m / (A_min * rho)

	Re := Reynolds(V_max, tube_diameter, rho, mu)
	Pr := Prandtl(Cp, mu, k)

	Nu := 0.134 * math.Pow(Re, 0.681) * math.Pow(Pr, 1.0/3.0) * math.Pow(bare_length/fin_height, 0.2) * math.Pow(bare_length/fin_thickness, 0.1134)

	h := k / tube_diameter * Nu
	efficiency := Fin_efficiency_Kern_Kraus(tube_diameter, fin_diameter, fin_thickness, k_fin, h)
	h_total_area_basis := (efficiency*A_fin + A_tube_showing) / A * h
	h_bare_tube_basis := h_total_area_basis * A_increase

	return h_bare_tube_basis
}

/*
Calculates the air side heat transfer coefficient for an air cooler or
other finned tube bundle with the high-fin staggered bank correlation of
ESDU 86022, as presented in Hewitt et al., Process Heat Transfer.

	Nu = 0.242*Re^0.658*(S/h)^0.297*(Pn/Pp)^-0.091*Pr^(1/3)

	Args:
		m: mass flow rate of air across the tube bank, kg/s
		A: surface area of combined finned and non-finned area exposed for
		   heat transfer, m2
		A_min: minimum air flow area, m2
		A_increase: ratio of actual surface area to bare tube surface area, -
		A_fin: surface area of all the fins in the bundle, m2
		A_tube_showing: area of the bare tube exposed in the bundle, m2
		tube_diameter: diameter of the bare tube, m
		fin_diameter: outer diameter of each tube including the fins, m
		fin_thickness: thickness of the fins, m
		bare_length: length of bare tube between two fins, m
		pitch_parallel: distance between tube centers along a line parallel
		                to the flow, m
		pitch_normal: distance between tube centers in a line 90 degrees to
		              the line of flow, m
		rho: average density of air across the tube bank, kg/m3
		Cp: average heat capacity of air across the tube bank, J/kg/K
		mu: average viscosity of air across the tube bank, Pa s
		k: average thermal conductivity of air across the tube bank, W/m/K
		k_fin: thermal conductivity of the fin, W/m/K

	Returns:
		air side heat transfer coefficient on a bare-tube surface area
		basis, as if there were no fins present, W/K/m2

	Notes:
		Two correction factors F1 and F2 for row count and inclination
		should be included as well; they are not applied here.
*/
func H_ESDU_highfin_staggered(m, A, A_min, A_increase, A_fin, A_tube_showing,
	tube_diameter, fin_diameter, fin_thickness, bare_length,
	pitch_parallel, pitch_normal,
	rho, Cp, mu, k, k_fin float64) float64 {

	fin_height := 0.5 * (fin_diameter - tube_diameter)

	V_max := m / (A_min * rho)
	Re := Reynolds(V_max, tube_diameter, rho, mu)
	Pr := Prandtl(Cp, mu, k)
	Nu := 0.242 * math.Pow(Re, 0.658) * math.Pow(bare_length/fin_height, 0.297) * math.Pow(pitch_normal/pitch_parallel, -0.091) * math.Pow(Pr, 1.0/3.0)
	h := k / tube_diameter * Nu

	efficiency := Fin_efficiency_Kern_Kraus(tube_diameter, fin_diameter, fin_thickness, k_fin, h)
	h_total_area_basis := (efficiency*A_fin + A_tube_showing) / A * h
	h_bare_tube_basis := h_total_area_basis * A_increase
	return h_bare_tube_basis
}
