package optimizer

import "aropt-mcp/internal/portfolio"

// Weights holds per-bucket collection effort coefficients. Older buckets are
// costlier to collect, so the defaults are monotonically non-decreasing with
// bucket age.
type Weights map[string]float64

var defaultWeights = map[string]float64{
	portfolio.Bucket1To30:   0.8,
	portfolio.Bucket31To60:  1.0,
	portfolio.Bucket61To90:  1.5,
	portfolio.Bucket91To120: 2.0,
	portfolio.Bucket120Plus: 4.0,
}

// DefaultWeights returns a fresh copy of the default effort coefficients for
// the overdue buckets of set. A copy per call keeps the shared defaults
// immutable no matter what callers do with the returned map.
func DefaultWeights(set portfolio.BucketSet) Weights {
	w := make(Weights, set.Len()-1)
	for _, b := range set.Overdue() {
		w[b] = defaultWeights[b]
	}
	return w
}
