package ht

import "math"

// AirCooledExchanger holds the geometry of a finned tube bundle in an air
// cooler bay. Derived areas are computed once by NewAirCooledExchanger and
// feed the air-side heat transfer correlations directly.
type AirCooledExchanger struct {
	Tube_rows       int
	Tube_passes     int
	Tubes_per_row   int
	Tube_length     float64 // m
	Tube_diameter   float64 // m
	Tube_thickness  float64 // m
	Fin_thickness   float64 // m
	Fin_height      float64 // m
	Fin_density     float64 // fins/m
	Pitch_normal    float64 // m
	Pitch_parallel  float64 // m
	Bundles_per_bay int
	Parallel_bays   int
	Corbels         bool

	Fin_diameter        float64 // m
	Fin_interval        float64 // m
	Bare_length         float64 // m
	Tube_inner_diameter float64 // m

	Tubes_per_bundle int
	Tubes_per_bay    int
	Tubes            int
	Fins_per_tube    float64

	A_bare_tube_per_tube    float64 // m2
	A_bare_tube             float64 // m2
	A_per_fin               float64 // m2
	A_fin_per_tube          float64 // m2
	A_fin                   float64 // m2
	A_tube_showing_per_tube float64 // m2
	A_tube_showing          float64 // m2
	A_per_tube              float64 // m2
	A                       float64 // m2
	A_increase              float64 // -
	Channels                int
	A_min                   float64 // m2
}

/*
Builds the geometry of an air cooled exchanger tube bundle.

	Args:
		tube_rows: number of tube rows per bundle, -
		tube_passes: number of tube passes (tube side), -
		tubes_per_row: number of tubes per row per bundle, -
		tube_length: length of the tubes, m
		tube_diameter: outer diameter of the bare tubes, m
		fin_thickness: thickness of the fins, m
		fin_height: height of the fins above the bare tube, m
		fin_density: number of fins per unit length of tube, fins/m
		pitch_normal: tube pitch normal to the air flow, m
		pitch_parallel: tube pitch parallel to the air flow, m
		tube_thickness: wall thickness of the tubes, m
		bundles_per_bay: number of tube bundles per bay, -
		parallel_bays: number of bays in parallel, -
		corbels: whether corbels are used to blank off the air flow gaps
		         along the sides of the bundle

	Returns:
		AirCooledExchanger with all derived quantities populated

	Notes:
		The fin count per tube is kept as a continuous ratio of tube length
		to fin interval; rounding it to whole fins changes the computed
		areas by more than the correlations' reproducibility.

		The minimum flow area takes the gap between finned tubes in a row,
		reduced by the fraction of the gap blocked by fin metal. With
		corbels the outermost half-gaps are blanked off and the channel
		count equals the tube count per row; without, one extra channel is
		open.
*/
func NewAirCooledExchanger(tube_rows, tube_passes, tubes_per_row int,
	tube_length, tube_diameter, fin_thickness, fin_height, fin_density,
	pitch_normal, pitch_parallel, tube_thickness float64,
	bundles_per_bay, parallel_bays int, corbels bool) *AirCooledExchanger {

	ac := &AirCooledExchanger{
		Tube_rows:       tube_rows,
		Tube_passes:     tube_passes,
		Tubes_per_row:   tubes_per_row,
		Tube_length:     tube_length,
		Tube_diameter:   tube_diameter,
		Tube_thickness:  tube_thickness,
		Fin_thickness:   fin_thickness,
		Fin_height:      fin_height,
		Fin_density:     fin_density,
		Pitch_normal:    pitch_normal,
		Pitch_parallel:  pitch_parallel,
		Bundles_per_bay: bundles_per_bay,
		Parallel_bays:   parallel_bays,
		Corbels:         corbels,
	}

	ac.Fin_diameter = tube_diameter + 2.0*fin_height
	ac.Fin_interval = 1.0 / fin_density
	ac.Bare_length = ac.Fin_interval - fin_thickness
	ac.Tube_inner_diameter = tube_diameter - 2.0*tube_thickness

	ac.Tubes_per_bundle = tubes_per_row * tube_rows
	ac.Tubes_per_bay = ac.Tubes_per_bundle * bundles_per_bay
	ac.Tubes = ac.Tubes_per_bay * parallel_bays

	ac.Fins_per_tube = tube_length / ac.Fin_interval

	ac.A_bare_tube_per_tube = math.Pi * tube_diameter * tube_length
	ac.A_bare_tube = ac.A_bare_tube_per_tube * float64(ac.Tubes)

	// both fin faces plus the rim of the fin tip
	ac.A_per_fin = 2.0*math.Pi/4.0*(ac.Fin_diameter*ac.Fin_diameter-tube_diameter*tube_diameter) + math.Pi*ac.Fin_diameter*fin_thickness
	ac.A_fin_per_tube = ac.Fins_per_tube * ac.A_per_fin
	ac.A_fin = ac.A_fin_per_tube * float64(ac.Tubes)

	ac.A_tube_showing_per_tube = math.Pi * tube_diameter * tube_length * (1.0 - fin_thickness/ac.Fin_interval)
	ac.A_tube_showing = ac.A_tube_showing_per_tube * float64(ac.Tubes)

	ac.A_per_tube = ac.A_fin_per_tube + ac.A_tube_showing_per_tube
	ac.A = ac.A_per_tube * float64(ac.Tubes)
	ac.A_increase = ac.A_per_tube / ac.A_bare_tube_per_tube

	if corbels {
		ac.Channels = tubes_per_row
	} else {
		ac.Channels = tubes_per_row + 1
	}
	gap := pitch_normal - tube_diameter - 2.0*fin_height*fin_thickness/ac.Fin_interval
	ac.A_min = float64(ac.Channels) * tube_length * gap

	return ac
}
