package simulation

import (
	"errors"
	"math"
	"testing"

	"aropt-mcp/internal/optimizer"
	"aropt-mcp/internal/portfolio"
)

func TestSimulatorThreePeriodHorizon(t *testing.T) {
	set := portfolio.SixBuckets()
	sim := &Simulator{
		Set:     set,
		Targets: optimizer.Targets{TargetCurrentRatio: 0.965, MaxPastDueRatio: 0.02},
	}

	history, err := sim.Run(portfolio.Sample(), 3)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(history) != 3 {
		t.Fatalf("expected 3 period records, got %d", len(history))
	}

	if got := history[0].Balances.Total(); math.Abs(got-10600000.00) > 0.01 {
		t.Errorf("period-1 total exposure = %.2f, want 10600000.00", got)
	}

	for i, rec := range history {
		if rec.Period != i+1 {
			t.Errorf("record %d has period %d, want %d", i, rec.Period, i+1)
		}
		if rec.Kpi.CurrentRatio < 0.965-1e-4 {
			t.Errorf("period %d current ratio %v misses target", rec.Period, rec.Kpi.CurrentRatio)
		}
		if rec.Kpi.PdrRatio > 0.02+1e-4 {
			t.Errorf("period %d past-due ratio %v exceeds cap", rec.Period, rec.Kpi.PdrRatio)
		}
		for _, b := range set.Overdue() {
			if rec.Plan[b] < 0 || rec.Plan[b] > 1 {
				t.Errorf("period %d fraction for %s out of range: %v", rec.Period, b, rec.Plan[b])
			}
		}
	}

	// Recovered cash is reinjected, so the book size stays constant (up to
	// the cash rounding granularity) across all periods.
	for i := 1; i < len(history); i++ {
		if math.Abs(history[i].Balances.Total()-history[0].Balances.Total()) > 0.05 {
			t.Errorf("period %d total %v drifted from period 1 total %v",
				history[i].Period, history[i].Balances.Total(), history[0].Balances.Total())
		}
	}
}

func TestSimulatorDoesNotMutateInitialBalances(t *testing.T) {
	initial := portfolio.Sample()
	before := initial.Clone()

	sim := &Simulator{
		Set:     portfolio.SixBuckets(),
		Targets: optimizer.Targets{TargetCurrentRatio: 0.965, MaxPastDueRatio: 0.02},
	}
	if _, err := sim.Run(initial, 2); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for b, v := range before {
		if initial[b] != v {
			t.Errorf("initial balance for %s changed from %v to %v", b, v, initial[b])
		}
	}
}

func TestSimulatorHaltsOnInfeasiblePeriod(t *testing.T) {
	set := portfolio.SixBuckets()
	calls := 0

	sim := &Simulator{
		Set:     set,
		Targets: optimizer.Targets{TargetCurrentRatio: 0.9, MaxPastDueRatio: 0.1},
		Optimise: func(s portfolio.BucketSet, bal portfolio.BalanceVector, t optimizer.Targets, w optimizer.Weights) (portfolio.RecoveryPlan, portfolio.KpiSnapshot, error) {
			calls++
			if calls >= 2 {
				return nil, portfolio.KpiSnapshot{}, &optimizer.InfeasibleError{Targets: t, TotalExposure: bal.Total()}
			}
			plan := portfolio.RecoveryPlan{}
			for _, b := range s.Overdue() {
				plan[b] = 0
			}
			return plan, portfolio.KpiSnapshot{}, nil
		},
	}

	history, err := sim.Run(portfolio.Sample(), 5)
	if err == nil {
		t.Fatal("expected a period error")
	}

	var perr *PeriodError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PeriodError, got %T: %v", err, err)
	}
	if perr.Period != 2 {
		t.Errorf("failing period = %d, want 2", perr.Period)
	}

	var infErr *optimizer.InfeasibleError
	if !errors.As(err, &infErr) {
		t.Error("PeriodError must unwrap to the underlying InfeasibleError")
	}

	if len(history) != 1 {
		t.Errorf("expected partial history of 1 record, got %d", len(history))
	}
	if calls != 2 {
		t.Errorf("simulation must halt at the failing period, optimiser called %d times", calls)
	}
}

func TestSimulatorRejectsNonPositivePeriodCount(t *testing.T) {
	sim := &Simulator{
		Set:     portfolio.SixBuckets(),
		Targets: optimizer.Targets{TargetCurrentRatio: 0.9, MaxPastDueRatio: 0.1},
	}

	for _, periods := range []int{0, -3} {
		_, err := sim.Run(portfolio.Sample(), periods)
		var valErr *optimizer.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("periods=%d: expected ValidationError, got %T: %v", periods, err, err)
		}
	}
}

func TestSimulatorChainsRollForward(t *testing.T) {
	// The balances recorded for period p+1 must equal the roll-forward of
	// period p's balances under period p's plan and recovered cash.
	set := portfolio.SixBuckets()
	sim := &Simulator{
		Set:     set,
		Targets: optimizer.Targets{TargetCurrentRatio: 0.965, MaxPastDueRatio: 0.02},
	}

	history, err := sim.Run(portfolio.Sample(), 3)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i := 0; i < len(history)-1; i++ {
		want := RollForward(set, history[i].Balances, history[i].Plan, history[i].Kpi.CashRecovered)
		for _, b := range set.Names() {
			if math.Abs(history[i+1].Balances[b]-want[b]) > 1e-9 {
				t.Errorf("period %d balance for %s = %v, want %v", history[i+1].Period, b, history[i+1].Balances[b], want[b])
			}
		}
	}
}
