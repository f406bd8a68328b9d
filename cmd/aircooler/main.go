package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/VikramGovindarajan/ht"
)

// RatingRow is one line of the air flow sweep written to the output CSV.
type RatingRow struct {
	M_air          float64 `csv:"m_air"`            // kg/s
	V_max          float64 `csv:"v_max"`            // m/s
	Re             float64 `csv:"re"`               // -
	H_briggs_young float64 `csv:"h_briggs_young"`   // W/m2/K, bare tube basis
	H_esdu         float64 `csv:"h_esdu_staggered"` // W/m2/K, bare tube basis
}

type caseData struct {
	ac *ht.AirCooledExchanger

	m, rho, Cp, mu, k float64
	k_fin             float64

	Thi, Tho, Tci, Tco float64

	tip_speed, fan_power, fan_diameter float64
	induced                            bool

	m_min, m_max float64
	steps        int

	csv_path string
}

func load_case(path string) *caseData {
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).Fatalf("cannot read case file %s", path)
	}

	b := file.Section("bundle")
	ac := ht.NewAirCooledExchanger(
		b.Key("tube_rows").MustInt(4),
		b.Key("tube_passes").MustInt(4),
		b.Key("tubes_per_row").MustInt(20),
		b.Key("tube_length").MustFloat64(3.0),
		b.Key("tube_diameter").MustFloat64(0.0254),
		b.Key("fin_thickness").MustFloat64(0.000406),
		b.Key("fin_height").MustFloat64(0.0159),
		b.Key("fin_density").MustFloat64(433.1),
		b.Key("pitch_normal").MustFloat64(0.06033),
		b.Key("pitch_parallel").MustFloat64(0.05207),
		b.Key("tube_thickness").MustFloat64(0.0034),
		b.Key("bundles_per_bay").MustInt(1),
		b.Key("parallel_bays").MustInt(1),
		b.Key("corbels").MustBool(true),
	)

	a := file.Section("air")
	s := file.Section("streams")
	f := file.Section("fan")
	sw := file.Section("sweep")

	return &caseData{
		ac:           ac,
		m:            a.Key("m").MustFloat64(21.56),
		rho:          a.Key("rho").MustFloat64(1.161),
		Cp:           a.Key("cp").MustFloat64(1007.0),
		mu:           a.Key("mu").MustFloat64(1.85e-5),
		k:            a.Key("k").MustFloat64(0.0263),
		k_fin:        file.Section("fin").Key("k_fin").MustFloat64(205.0),
		Thi:          s.Key("thi").MustFloat64(398.15),
		Tho:          s.Key("tho").MustFloat64(318.15),
		Tci:          s.Key("tci").MustFloat64(298.15),
		Tco:          s.Key("tco").MustFloat64(368.15),
		tip_speed:    f.Key("tip_speed").MustFloat64(52.95),
		fan_power:    f.Key("power").MustFloat64(18717.0),
		fan_diameter: f.Key("diameter").MustFloat64(4.267),
		induced:      f.Key("induced").MustBool(false),
		m_min:        sw.Key("m_min").MustFloat64(10.0),
		m_max:        sw.Key("m_max").MustFloat64(30.0),
		steps:        sw.Key("steps").MustInt(21),
		csv_path:     file.Section("output").Key("csv_path").MustString("rating.csv"),
	}
}

func rate(c *caseData) []*RatingRow {
	ac := c.ac
	rows := make([]*RatingRow, 0, c.steps)
	for i := 0; i < c.steps; i++ {
		m := c.m_min
		if c.steps > 1 {
			m += (c.m_max - c.m_min) * float64(i) / float64(c.steps-1)
		}
		V_max := m / (ac.A_min * c.rho)
		rows = append(rows, &RatingRow{
			M_air: m,
			V_max: V_max,
			Re:    ht.Reynolds(V_max, ac.Tube_diameter, c.rho, c.mu),
			H_briggs_young: ht.H_Briggs_Young(m, ac.A, ac.A_min, ac.A_increase,
				ac.A_fin, ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter,
				ac.Fin_thickness, ac.Bare_length, c.rho, c.Cp, c.mu, c.k, c.k_fin),
			H_esdu: ht.H_ESDU_highfin_staggered(m, ac.A, ac.A_min, ac.A_increase,
				ac.A_fin, ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter,
				ac.Fin_thickness, ac.Bare_length, ac.Pitch_parallel, ac.Pitch_normal,
				c.rho, c.Cp, c.mu, c.k, c.k_fin),
		})
	}
	return rows
}

func main() {
	case_path := flag.String("case", "conf/aircooler.ini", "path to the case INI file")
	flag.Parse()

	c := load_case(*case_path)
	ac := c.ac

	log.WithFields(log.Fields{
		"tubes":      ac.Tubes,
		"A":          fmt.Sprintf("%.2f", ac.A),
		"A_min":      fmt.Sprintf("%.4f", ac.A_min),
		"A_increase": fmt.Sprintf("%.2f", ac.A_increase),
	}).Info("bundle geometry")

	Ft := ht.Ft_aircooler(c.Thi, c.Tho, c.Tci, c.Tco, ac.Tube_passes, ac.Tube_rows)
	log.WithField("Ft", Ft).Info("crossflow LMTD correction")

	hB := ht.H_Briggs_Young(c.m, ac.A, ac.A_min, ac.A_increase, ac.A_fin,
		ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter, ac.Fin_thickness,
		ac.Bare_length, c.rho, c.Cp, c.mu, c.k, c.k_fin)
	hE := ht.H_ESDU_highfin_staggered(c.m, ac.A, ac.A_min, ac.A_increase, ac.A_fin,
		ac.A_tube_showing, ac.Tube_diameter, ac.Fin_diameter, ac.Fin_thickness,
		ac.Bare_length, ac.Pitch_parallel, ac.Pitch_normal, c.rho, c.Cp, c.mu, c.k, c.k_fin)
	log.WithFields(log.Fields{"briggs_young": hB, "esdu": hE}).Info("air side h, bare tube basis, W/m2/K")

	fan_d := ht.Nearest_fan_diameter(c.fan_diameter)
	gpsa := ht.Air_cooler_noise_GPSA(c.tip_speed, c.fan_power)
	mukherjee := ht.Air_cooler_noise_Mukherjee(c.tip_speed, c.fan_power, fan_d, c.induced)
	log.WithFields(log.Fields{"gpsa": gpsa, "mukherjee": mukherjee, "fan_diameter": fan_d}).Info("fan noise, dB(A)")

	rows := rate(c)
	out, err := os.Create(c.csv_path)
	if err != nil {
		log.WithError(err).Fatalf("cannot create %s", c.csv_path)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		log.WithError(err).Fatal("cannot write rating table")
	}
	log.Infof("wrote %d rating rows to %s", len(rows), c.csv_path)
}
