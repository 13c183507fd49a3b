package suite

import "math"

// Result summarizes a set of positive duration samples with log-space
// statistics: the geometric mean as the point estimate and the geometric
// standard deviation as the spread. Geometric statistics suit transfer
// timings, which are strictly positive and multiplicatively distributed.
type Result struct {
	geoMean float64
	geoStd  float64
}

// NewResult computes the geometric statistics for the given samples, in
// seconds. An empty sample set yields the degenerate result: NaN mean,
// infinite spread, bounds [0, +Inf]. The suite reports this unusable
// interval rather than failing, so a tool that fails every trial still
// produces a uniformly shaped report line.
func NewResult(samples []float64) Result {
	if len(samples) == 0 {
		return Result{geoMean: math.NaN(), geoStd: math.Inf(1)}
	}

	var lnSum float64
	for _, s := range samples {
		lnSum += math.Log(s)
	}
	lnMean := lnSum / float64(len(samples))
	geoMean := math.Exp(lnMean)

	var lnVar float64
	for _, s := range samples {
		d := math.Log(s / geoMean)
		lnVar += d * d
	}
	lnVar /= float64(len(samples))

	return Result{geoMean: geoMean, geoStd: math.Exp(math.Sqrt(lnVar))}
}

// GeoMean returns the geometric mean in seconds.
func (r Result) GeoMean() float64 {
	return r.geoMean
}

// GeoStd returns the geometric standard deviation.
func (r Result) GeoStd() float64 {
	return r.geoStd
}

// LowerBound returns the lower bound in seconds of the one-geometric
// standard deviation interval.
func (r Result) LowerBound() float64 {
	if math.IsNaN(r.geoMean) {
		return 0
	}
	return r.geoMean / r.geoStd
}

// UpperBound returns the upper bound in seconds of the one-geometric
// standard deviation interval.
func (r Result) UpperBound() float64 {
	if math.IsNaN(r.geoMean) {
		return math.Inf(1)
	}
	return r.geoMean * r.geoStd
}
