package simulation

import (
	"fmt"

	"aropt-mcp/internal/optimizer"
	"aropt-mcp/internal/portfolio"
)

// OptimiseFunc solves one period. It matches optimizer.Optimise and exists so
// the horizon loop can be exercised without a live solver.
type OptimiseFunc func(portfolio.BucketSet, portfolio.BalanceVector, optimizer.Targets, optimizer.Weights) (portfolio.RecoveryPlan, portfolio.KpiSnapshot, error)

// PeriodError wraps a failed period's error with its 1-based index.
type PeriodError struct {
	Period int
	Err    error
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("period %d: %v", e.Period, e.Err)
}

func (e *PeriodError) Unwrap() error {
	return e.Err
}

// Simulator chains period optimisations through the roll-forward transition.
// Targets are held constant across all periods. Each Run owns its balance and
// history state exclusively, so independent simulations may run in parallel
// without synchronisation.
type Simulator struct {
	Set      portfolio.BucketSet
	Targets  optimizer.Targets
	Weights  optimizer.Weights // nil selects the defaults
	Optimise OptimiseFunc      // nil selects optimizer.Optimise
}

// Run simulates the given number of periods, strictly in sequence: period p's
// optimisation depends on period p-1's roll-forward output. Each period's
// recovered cash re-enters the book as fresh current sales.
//
// On a failing period the partial history up to (but excluding) that period is
// returned together with a *PeriodError naming it; a failed period is never
// skipped or replaced with a degraded plan.
func (s *Simulator) Run(initial portfolio.BalanceVector, periods int) ([]portfolio.PeriodRecord, error) {
	if periods < 1 {
		return nil, &optimizer.ValidationError{Reason: fmt.Sprintf("period count must be positive, got %d", periods)}
	}

	optimise := s.Optimise
	if optimise == nil {
		optimise = optimizer.Optimise
	}

	history := make([]portfolio.PeriodRecord, 0, periods)
	bal := initial.Clone()
	for p := 1; p <= periods; p++ {
		plan, kpi, err := optimise(s.Set, bal, s.Targets, s.Weights)
		if err != nil {
			return history, &PeriodError{Period: p, Err: err}
		}
		history = append(history, portfolio.PeriodRecord{
			Period:   p,
			Balances: bal,
			Plan:     plan,
			Kpi:      kpi,
		})
		bal = RollForward(s.Set, bal, plan, kpi.CashRecovered)
	}
	return history, nil
}
