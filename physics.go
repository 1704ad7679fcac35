package sstars

import "math"

// Derived holds the quantities computed from one Record. Distances are in AU
// and speeds are fractions of the speed of light.
type Derived struct {
	QAng   float64 // resolved periapsis angular separation, arcsec
	Q, DQ  float64 // periapsis distance
	V, DV  float64 // speed at periapsis
	VAvg   float64 // mean orbital speed; zero unless the schema has it
	HasAvg bool
}

// Derive computes periapsis distance and speed with first-order error bars,
// ignoring correlations between the inputs. Only d is used as the distance;
// the record's own R and DR columns are not consulted.
//
// Degenerate inputs (a = 0, q_ang = 0, e >= 1) yield Inf or NaN fields.
func Derive(rec Record, d Distance, s Schema) Derived {
	a, da := rec.A, rec.DA
	P, dP := rec.P, rec.DP
	R, dR := d.Parsec, d.Uncertainty
	qAng := rec.PeriapsisAngle()
	dqAng := rec.DQAng

	q := R * qAng
	dq := q * math.Sqrt(dR*dR/(R*R)+dqAng*dqAng/(qAng*qAng))
	vis := 2*a/qAng - 1
	v := 2 * Pi * a * R / P * math.Sqrt(vis)
	dv := 2 * Pi * a * R / P * math.Sqrt(
		vis*(da*da/(a*a)+dR*dR/(R*R)+dP*dP/(P*P))+
			dqAng*dqAng/(4*qAng*qAng)+
			da*da/(a*a)*(math.Sqrt(vis)+0.25))

	out := Derived{
		QAng: qAng,
		Q:    q * auPerParsecArcsec,
		DQ:   dq * auPerParsecArcsec,
		V:    v * betaPerParsecArcsecYear,
		DV:   dv * betaPerParsecArcsecYear,
	}
	if s.HasMeanSpeed() {
		out.VAvg = meanSpeed(a, rec.E, R, P) * betaPerParsecArcsecYear
		out.HasAvg = true
	}
	return out
}

// meanSpeed returns the orbit circumference over the period, in
// parsec·arcsec/yr, using Ramanujan's ellipse perimeter approximation.
// No uncertainty is propagated; it stays well below that of the periapsis
// speed.
func meanSpeed(a, e, R, P float64) float64 {
	b := a * math.Sqrt(1-e*e)
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	circum := Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h))) * R
	return circum / P
}
