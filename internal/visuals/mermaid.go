package visuals

import (
	"fmt"
	"math"
	"strings"

	"aropt-mcp/internal/portfolio"
)

// GenerateBalanceTrajectoryChart creates a Mermaid xychart-beta showing how
// the overdue bucket balances evolve across the simulated horizon. One line
// per overdue bucket, youngest first.
func GenerateBalanceTrajectoryChart(set portfolio.BucketSet, history []portfolio.PeriodRecord) string {
	if len(history) == 0 {
		return ""
	}

	var labels []string
	maxY := 0.0
	for _, rec := range history {
		labels = append(labels, fmt.Sprintf("%d", rec.Period))
		for _, b := range set.Overdue() {
			if rec.Balances[b] > maxY {
				maxY = rec.Balances[b]
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Overdue Balances by Period\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Balance\" 0 --> %d\n", int(math.Ceil(maxY*1.2))+1))

	for _, b := range set.Overdue() {
		var values []string
		for _, rec := range history {
			values = append(values, fmt.Sprintf("%.2f", rec.Balances[b]))
		}
		sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateKpiTrajectoryChart creates a Mermaid xychart-beta of the projected
// current ratio and past-due ratio per period, in percent.
func GenerateKpiTrajectoryChart(history []portfolio.PeriodRecord) string {
	if len(history) == 0 {
		return ""
	}

	var labels []string
	var currentRatios []string
	var pdrRatios []string
	for _, rec := range history {
		labels = append(labels, fmt.Sprintf("%d", rec.Period))
		currentRatios = append(currentRatios, fmt.Sprintf("%.2f", rec.Kpi.CurrentRatio*100))
		pdrRatios = append(pdrRatios, fmt.Sprintf("%.2f", rec.Kpi.PdrRatio*100))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"KPI Trajectory (CSR vs PDR, %)\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"Percent\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(currentRatios, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(pdrRatios, ", ")))
	sb.WriteString("```")
	return sb.String()
}
