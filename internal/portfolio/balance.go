package portfolio

import (
	"fmt"
	"math"
)

// BalanceVector maps bucket names to non-negative monetary amounts. One value
// per period; core operations return new vectors instead of mutating inputs.
type BalanceVector map[string]float64

// RecoveryPlan maps each overdue bucket to the fraction of its balance to be
// collected within the period. "current" never appears as a key.
type RecoveryPlan map[string]float64

// KpiSnapshot is the derived, read-only KPI record for one optimised period.
type KpiSnapshot struct {
	CurrentRatio  float64 `json:"current_ratio"`
	PdrRatio      float64 `json:"pdr_ratio"`
	CashRecovered float64 `json:"cash_recovered"`
}

// PeriodRecord captures one simulated period. Immutable once appended to the
// history; insertion order is temporal order.
type PeriodRecord struct {
	Period   int           `json:"period"`
	Balances BalanceVector `json:"balances"`
	Plan     RecoveryPlan  `json:"recoveries"`
	Kpi      KpiSnapshot   `json:"kpi"`
}

// Total returns the total exposure: the sum over all buckets including current.
func (b BalanceVector) Total() float64 {
	var total float64
	for _, v := range b {
		total += v
	}
	return total
}

// Clone returns an independent copy.
func (b BalanceVector) Clone() BalanceVector {
	out := make(BalanceVector, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Validate checks b against the bucket set: every bucket present (including
// "current"), no unknown buckets, no negative or non-finite amounts, and a
// strictly positive total exposure.
func (b BalanceVector) Validate(set BucketSet) error {
	for _, name := range set.Names() {
		v, ok := b[name]
		if !ok {
			return fmt.Errorf("missing bucket %q", name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bucket %q has non-finite balance", name)
		}
		if v < 0 {
			return fmt.Errorf("bucket %q has negative balance %.2f", name, v)
		}
	}
	for name := range b {
		if !set.Contains(name) {
			return fmt.Errorf("unknown bucket %q", name)
		}
	}
	if b.Total() <= 0 {
		return fmt.Errorf("total exposure must be positive, got %.2f", b.Total())
	}
	return nil
}
