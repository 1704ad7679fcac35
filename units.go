package sstars

// Physical constants, SI unless noted. Pi is the truncated value the survey
// tables were originally produced with, not math.Pi.
const (
	Pi           = 3.14159265359
	Year         = 31556925.216         // s
	AU           = 149597870700e0       // m
	Parsec       = 3.08567758149137e16  // m
	SpeedOfLight = 299792458e0          // m/s
	Arcsec       = 4.84813681109536e-06 // rad
)

// Conversion factors, folded one float64 operation at a time.
var (
	parsec, arcsec, au, year, lightSpeed = float64(Parsec), float64(Arcsec), float64(AU), float64(Year), float64(SpeedOfLight)

	// auPerParsecArcsec converts parsec·arcsec to AU.
	auPerParsecArcsec = parsec * arcsec / au
	// betaPerParsecArcsecYear converts parsec·arcsec/yr to a fraction of c.
	betaPerParsecArcsecYear = parsec * arcsec / year / lightSpeed
)

// Distance is the assumed distance to the observed system, in parsecs, with
// its uncertainty. It applies to every row of a run.
type Distance struct {
	Parsec      float64
	Uncertainty float64
}

// DefaultDistance is the galactic-centre distance the survey tables use.
var DefaultDistance = Distance{Parsec: 8179, Uncertainty: 13}
