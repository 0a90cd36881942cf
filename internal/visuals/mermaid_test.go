package visuals

import (
	"strings"
	"testing"

	"aropt-mcp/internal/portfolio"
)

func sampleHistory() []portfolio.PeriodRecord {
	return []portfolio.PeriodRecord{
		{
			Period: 1,
			Balances: portfolio.BalanceVector{
				portfolio.BucketCurrent: 1000,
				portfolio.Bucket1To30:   100,
				portfolio.Bucket31To60:  80,
				portfolio.Bucket61To90:  60,
				portfolio.Bucket91To120: 40,
				portfolio.Bucket120Plus: 20,
			},
			Kpi: portfolio.KpiSnapshot{CurrentRatio: 0.90, PdrRatio: 0.02},
		},
		{
			Period: 2,
			Balances: portfolio.BalanceVector{
				portfolio.BucketCurrent: 1100,
				portfolio.Bucket1To30:   0,
				portfolio.Bucket31To60:  50,
				portfolio.Bucket61To90:  40,
				portfolio.Bucket91To120: 30,
				portfolio.Bucket120Plus: 25,
			},
			Kpi: portfolio.KpiSnapshot{CurrentRatio: 0.93, PdrRatio: 0.015},
		},
	}
}

func TestGenerateBalanceTrajectoryChart(t *testing.T) {
	set := portfolio.SixBuckets()
	chart := GenerateBalanceTrajectoryChart(set, sampleHistory())

	if !strings.Contains(chart, "xychart-beta") {
		t.Error("expected a mermaid xychart")
	}
	// One line per overdue bucket.
	if got := strings.Count(chart, "line ["); got != len(set.Overdue()) {
		t.Errorf("expected %d line series, got %d", len(set.Overdue()), got)
	}
	if !strings.Contains(chart, "x-axis [1, 2]") {
		t.Error("expected period labels 1 and 2 on the x-axis")
	}
}

func TestGenerateKpiTrajectoryChart(t *testing.T) {
	chart := GenerateKpiTrajectoryChart(sampleHistory())

	if !strings.Contains(chart, "xychart-beta") {
		t.Error("expected a mermaid xychart")
	}
	if got := strings.Count(chart, "line ["); got != 2 {
		t.Errorf("expected 2 line series (CSR, PDR), got %d", got)
	}
	if !strings.Contains(chart, "90.00") {
		t.Error("expected the current ratio rendered in percent")
	}
}

func TestChartsEmptyHistory(t *testing.T) {
	if got := GenerateBalanceTrajectoryChart(portfolio.SixBuckets(), nil); got != "" {
		t.Errorf("expected empty chart for empty history, got %q", got)
	}
	if got := GenerateKpiTrajectoryChart(nil); got != "" {
		t.Errorf("expected empty chart for empty history, got %q", got)
	}
}
