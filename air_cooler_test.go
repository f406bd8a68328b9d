package ht

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFt_aircooler(t *testing.T) {
	Ft := Ft_aircooler(125., 45., 25., 95., 1, 4)
	assert.InEpsilon(t, 0.5505093604092708, Ft, 1e-9)

	// same inputs, same bits
	assert.Equal(t, Ft, Ft_aircooler(125., 45., 25., 95., 1, 4))

	// regression values for every tabulated configuration at the same
	// stream temperatures
	cases := []struct {
		Ntp, rows int
		Ft        float64
	}{
		{1, 1, -0.27404083956959324},
		{1, 2, 0.33116349710604986},
		{1, 3, 0.5039970625217307},
		{1, 4, 0.5505093604092708},
		{2, 2, 0.6288924509842155},
		{2, 4, 0.7042900389411706},
		{3, 3, 0.7895159305090966},
		{4, 4, 0.886840760849766},
	}
	for _, c := range cases {
		assert.InEpsilon(t, c.Ft, Ft_aircooler(125., 45., 25., 95., c.Ntp, c.rows), 1e-9,
			"Ntp=%d rows=%d", c.Ntp, c.rows)
	}
}

func TestFt_aircooler_untabulated(t *testing.T) {
	// 1 pass with more than 4 rows reuses the 4 row 1 pass table
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 1, 4),
		Ft_aircooler(125., 45., 25., 95., 1, 5))
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 1, 4),
		Ft_aircooler(125., 45., 25., 95., 1, 10))

	// equal pass and row counts above 4 reuse the 4 row 4 pass table
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 4, 4),
		Ft_aircooler(125., 45., 25., 95., 5, 5))
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 4, 4),
		Ft_aircooler(125., 45., 25., 95., 8, 8))

	// every other unmatched combination falls back to the 4 row 2 pass table
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 2, 4),
		Ft_aircooler(125., 45., 25., 95., 3, 5))
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 2, 4),
		Ft_aircooler(125., 45., 25., 95., 2, 3))
	assert.Equal(t,
		Ft_aircooler(125., 45., 25., 95., 2, 4),
		Ft_aircooler(125., 45., 25., 95., 5, 6))
}

func TestAir_cooler_noise_GPSA(t *testing.T) {
	// example problem from the GPSA Engineering Data Book
	noise := Air_cooler_noise_GPSA(3177.0/minute, 25.1*hp)
	assert.InEpsilon(t, 100.53680477959792, noise, 1e-12)
}

func TestAir_cooler_noise_Mukherjee(t *testing.T) {
	noise := Air_cooler_noise_Mukherjee(3177.0/minute, 25.1*hp, 4.267, false)
	assert.InEpsilon(t, 99.11026329092925, noise, 1e-12)

	induced := Air_cooler_noise_Mukherjee(3177.0/minute, 25.1*hp, 4.267, true)
	assert.Equal(t, noise-3.0, induced)
}

// reference bundle from Briggs and Young's worked example: 4x4x20 bundle of
// 1 inch tubes with 0.0159 m high fins at 1/0.002309 fins/m
func _example_bundle() *AirCooledExchanger {
	return NewAirCooledExchanger(4, 4, 20, 3.0, 1.0*inch, 0.000406, 0.0159,
		1.0/0.002309, 0.06033, 0.05207, (0.0254-0.0186)/2.0, 1, 1, true)
}

func TestH_Briggs_Young(t *testing.T) {
	ac := _example_bundle()
	h := H_Briggs_Young(21.56, ac.A, ac.A_min, ac.A_increase, ac.A_fin,
		ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter, ac.Fin_thickness,
		ac.Bare_length, 1.161, 1007., 1.85e-5, 0.0263, 205.)
	assert.InEpsilon(t, 1422.8722403237716, h, 1e-6)
}

func TestH_ESDU_highfin_staggered(t *testing.T) {
	ac := _example_bundle()
	h := H_ESDU_highfin_staggered(21.56, ac.A, ac.A_min, ac.A_increase, ac.A_fin,
		ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter, ac.Fin_thickness,
		ac.Bare_length, ac.Pitch_parallel, ac.Pitch_normal,
		1.161, 1007., 1.85e-5, 0.0263, 205.)
	assert.InEpsilon(t, 1390.888918049757, h, 1e-6)
}

func TestNearest_fan_diameter(t *testing.T) {
	assert.Equal(t, 4.455, Nearest_fan_diameter(4.267))
	assert.Equal(t, 1.0, Nearest_fan_diameter(1.0))
	assert.Equal(t, 0.71, Nearest_fan_diameter(0.2))
	assert.Equal(t, 15.85, Nearest_fan_diameter(20.0))
}
