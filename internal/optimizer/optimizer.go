package optimizer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"aropt-mcp/internal/portfolio"
)

// Targets holds the policy targets for one optimised period. MaxPastDueAmount
// is an optional absolute ceiling on the uncollected oldest-bucket balance;
// when present, both it and the ratio cap must hold (the tightest binds).
type Targets struct {
	TargetCurrentRatio float64  `json:"target_current_ratio"`
	MaxPastDueRatio    float64  `json:"max_past_due_ratio"`
	MaxPastDueAmount   *float64 `json:"max_past_due_amount,omitempty"`
}

// Optimise solves the one-period collection plan as a linear program: one
// continuous recovery fraction in [0,1] per overdue bucket, minimising the
// weighted collection effort subject to the current-ratio floor and the
// past-due cap. On success the returned fractions lie in [0,1], both
// constraints hold within solver tolerance, and the objective is the global
// minimum. A nil weights map selects DefaultWeights(set).
func Optimise(set portfolio.BucketSet, bal portfolio.BalanceVector, t Targets, weights Weights) (portfolio.RecoveryPlan, portfolio.KpiSnapshot, error) {
	if err := validate(set, bal, t, &weights); err != nil {
		return nil, portfolio.KpiSnapshot{}, err
	}

	overdue := set.Overdue()
	oldest := set.Oldest()
	n := len(overdue)
	total := bal.Total()
	current := bal[portfolio.BucketCurrent]

	// Objective: minimise the weighted sum of recovery fractions.
	c := make([]float64, n)
	oldestIdx := 0
	for i, b := range overdue {
		c[i] = weights[b]
		if b == oldest {
			oldestIdx = i
		}
	}

	// General-form inequality rows, G·r <= h:
	//   1. -Σ bal[b]·r[b]            <= current - target·total   (current-ratio floor)
	//   2. -bal[oldest]·r[oldest]    <= maxRatio·total - bal[oldest]
	//   3. -bal[oldest]·r[oldest]    <= maxAmount - bal[oldest]  (optional)
	//   then one pair of bound rows r[i] <= 1, -r[i] <= 0 per variable.
	rows := 2 + 2*n
	if t.MaxPastDueAmount != nil {
		rows++
	}
	g := mat.NewDense(rows, n, nil)
	h := make([]float64, rows)

	for i, b := range overdue {
		g.Set(0, i, -bal[b])
	}
	h[0] = current - t.TargetCurrentRatio*total

	g.Set(1, oldestIdx, -bal[oldest])
	h[1] = t.MaxPastDueRatio*total - bal[oldest]

	row := 2
	if t.MaxPastDueAmount != nil {
		g.Set(row, oldestIdx, -bal[oldest])
		h[row] = *t.MaxPastDueAmount - bal[oldest]
		row++
	}
	for i := 0; i < n; i++ {
		g.Set(row, i, 1)
		h[row] = 1
		row++
		g.Set(row, i, -1)
		h[row] = 0
		row++
	}

	x, err := solveGeneral(c, g, h)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, portfolio.KpiSnapshot{}, &InfeasibleError{
				Targets:       t,
				TotalExposure: total,
				Binding:       diagnoseInfeasibility(bal, overdue, t, total),
			}
		}
		return nil, portfolio.KpiSnapshot{}, &SolverError{Err: err}
	}

	// KPI fields are derived from the rounded fractions so that the published
	// plan, the KPI and the roll-forward all agree on the same numbers.
	plan := make(portfolio.RecoveryPlan, n)
	projected := current
	var cash float64
	for i, b := range overdue {
		plan[b] = round4(clamp01(x[i])) + 0 // +0 folds -0 into 0 for JSON output
		projected += bal[b] * plan[b]
		cash += bal[b] * plan[b]
	}

	kpi := portfolio.KpiSnapshot{
		CurrentRatio:  round4(projected / total),
		PdrRatio:      round4(bal[oldest] * (1 - plan[oldest]) / total),
		CashRecovered: round2(cash),
	}
	return plan, kpi, nil
}

func validate(set portfolio.BucketSet, bal portfolio.BalanceVector, t Targets, weights *Weights) error {
	if err := bal.Validate(set); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if t.TargetCurrentRatio < 0 || t.TargetCurrentRatio > 1 {
		return &ValidationError{Reason: fmt.Sprintf("target_current_ratio must be in [0,1], got %v", t.TargetCurrentRatio)}
	}
	if t.MaxPastDueRatio < 0 || t.MaxPastDueRatio > 1 {
		return &ValidationError{Reason: fmt.Sprintf("max_past_due_ratio must be in [0,1], got %v", t.MaxPastDueRatio)}
	}
	if t.MaxPastDueAmount != nil && *t.MaxPastDueAmount < 0 {
		return &ValidationError{Reason: fmt.Sprintf("max_past_due_amount must be non-negative, got %v", *t.MaxPastDueAmount)}
	}
	if *weights == nil {
		*weights = DefaultWeights(set)
		return nil
	}
	for _, b := range set.Overdue() {
		w, ok := (*weights)[b]
		if !ok {
			return &ValidationError{Reason: fmt.Sprintf("missing weight for bucket %q", b)}
		}
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return &ValidationError{Reason: fmt.Sprintf("weight for bucket %q must be positive, got %v", b, w)}
		}
	}
	return nil
}

// diagnoseInfeasibility names the constraint(s) a solver-reported infeasible
// problem cannot meet. Full collection maximises the projected current balance
// and zeroes the uncollected past-due balance, so a target unreachable even at
// 100% recovery is attributable analytically; otherwise the conflict sits at
// the numerical boundary where both targets bind jointly.
func diagnoseInfeasibility(bal portfolio.BalanceVector, overdue []string, t Targets, total float64) []string {
	const tol = 1e-9

	maxProjected := bal[portfolio.BucketCurrent]
	for _, b := range overdue {
		maxProjected += bal[b]
	}

	var binding []string
	if maxProjected < t.TargetCurrentRatio*total-tol {
		binding = append(binding, "target_current_ratio")
	}
	if len(binding) == 0 {
		binding = append(binding, "target_current_ratio", "max_past_due_ratio")
		if t.MaxPastDueAmount != nil {
			binding = append(binding, "max_past_due_amount")
		}
	}
	return binding
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}
