package simulation

import "aropt-mcp/internal/portfolio"

// RollForward advances a portfolio one period under the simple ageing model:
// the uncollected portion of each overdue bucket slides one step older, the
// oldest bucket absorbs its own remainder, and freshSales is injected into
// "current". Passing the period's recovered cash as freshSales keeps the book
// size constant. The youngest overdue bucket starts the next period empty;
// slippage out of "current" is intentionally not modeled.
//
// The input vector is never mutated; callers receive a new value.
func RollForward(set portfolio.BucketSet, bal portfolio.BalanceVector, plan portfolio.RecoveryPlan, freshSales float64) portfolio.BalanceVector {
	uncollected := func(b string) float64 {
		return bal[b] * (1 - plan[b])
	}

	overdue := set.Overdue() // youngest first
	m := len(overdue)

	next := make(portfolio.BalanceVector, set.Len())
	next[overdue[m-1]] = uncollected(overdue[m-1]) + uncollected(overdue[m-2])
	for i := m - 2; i >= 1; i-- {
		next[overdue[i]] = uncollected(overdue[i-1])
	}
	next[overdue[0]] = 0
	next[portfolio.BucketCurrent] = bal[portfolio.BucketCurrent] + freshSales
	return next
}
