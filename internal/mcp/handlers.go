package mcp

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"aropt-mcp/internal/optimizer"
	"aropt-mcp/internal/simulation"
	"aropt-mcp/internal/visuals"
)

// Envelope wraps every tool result with response metadata for the client.
type Envelope struct {
	AnalysisID string      `json:"analysis_id"`
	Data       interface{} `json:"data"`
	Warnings   []string    `json:"warnings,omitempty"`
	Guidance   []string    `json:"_guidance,omitempty"`
	Charts     []string    `json:"charts,omitempty"`
}

func wrapResponse(data interface{}, warnings, guidance, charts []string) Envelope {
	return Envelope{
		AnalysisID: uuid.New().String(),
		Data:       data,
		Warnings:   warnings,
		Guidance:   guidance,
		Charts:     charts,
	}
}

func (s *Server) handleGetPortfolioContext(args map[string]interface{}) (interface{}, error) {
	bal, source, err := s.resolveBalances(args)
	if err != nil {
		return nil, err
	}

	total := bal.Total()
	shares := make(map[string]float64, s.set.Len())
	for _, b := range s.set.Names() {
		shares[b] = round4(bal[b] / total)
	}

	data := map[string]interface{}{
		"source":         source,
		"bucket_order":   s.set.Names(),
		"balances":       bal,
		"total_exposure": round2(total),
		"shares":         shares,
	}
	guidance := []string{
		"Next: 'optimise_recovery_plan' for a one-period plan, or 'simulate_collection_horizon' for a multi-period projection.",
	}
	return wrapResponse(data, nil, guidance, nil), nil
}

func (s *Server) handleOptimiseRecoveryPlan(args map[string]interface{}) (interface{}, error) {
	bal, source, err := s.resolveBalances(args)
	if err != nil {
		return nil, err
	}
	targets := s.resolveTargets(args)
	weights := parseWeights(args["weights"])

	plan, kpi, err := optimizer.Optimise(s.set, bal, targets, weights)
	if err != nil {
		return nil, err
	}

	var insights []string
	for _, b := range s.set.Overdue() {
		if plan[b] >= 1 && bal[b] > 0 {
			insights = append(insights, fmt.Sprintf("Bucket %s is fully liquidated this period.", b))
		}
	}

	data := map[string]interface{}{
		"source":         source,
		"targets":        targets,
		"total_exposure": round2(bal.Total()),
		"recoveries":     plan,
		"kpi":            kpi,
		"insights":       insights,
	}
	guidance := []string{
		"Recovery fractions are per-bucket liquidation targets for this period; collected cash is reclassified as current.",
	}
	return wrapResponse(data, nil, guidance, nil), nil
}

func (s *Server) handleSimulateCollectionHorizon(args map[string]interface{}) (interface{}, error) {
	bal, source, err := s.resolveBalances(args)
	if err != nil {
		return nil, err
	}
	periods := asInt(args["periods"])
	targets := s.resolveTargets(args)

	sim := &simulation.Simulator{
		Set:     s.set,
		Targets: targets,
		Weights: parseWeights(args["weights"]),
	}

	history, err := sim.Run(bal, periods)
	if err != nil {
		var perr *simulation.PeriodError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("simulation halted at period %d of %d (%d completed period(s) before the failure): %w",
				perr.Period, periods, len(history), perr.Err)
		}
		return nil, err
	}

	log.Info().Int("periods", periods).Str("source", source).Msg("Horizon simulation complete")

	data := map[string]interface{}{
		"source":       source,
		"targets":      targets,
		"periods":      periods,
		"history":      history,
		"month_1_plan": history[0].Plan,
		"final_kpi":    history[len(history)-1].Kpi,
	}

	warnings := []string{
		"Slippage from 'current' into the youngest overdue bucket is not modeled; long-horizon overdue balances drain toward zero by construction.",
	}
	var charts []string
	if s.cfg.EnableMermaidCharts {
		charts = append(charts,
			visuals.GenerateBalanceTrajectoryChart(s.set, history),
			visuals.GenerateKpiTrajectoryChart(history),
		)
	}
	return wrapResponse(data, warnings, nil, charts), nil
}

func (s *Server) handleGetAnalysisRoadmap(goal string) (interface{}, error) {
	roadmaps := map[string]interface{}{
		"collection_planning": map[string]interface{}{
			"title":       "Analytical Workflow: Collection Planning",
			"description": "Recommended sequence to produce an actionable collection plan with projected KPIs.",
			"steps": []interface{}{
				map[string]interface{}{"step": 1, "tool": "get_portfolio_context", "description": "Anchor on the ageing data shape (balances, total exposure, bucket shares)."},
				map[string]interface{}{"step": 2, "tool": "optimise_recovery_plan", "description": "Compute the minimum-effort plan for the coming period."},
				map[string]interface{}{"step": 3, "tool": "simulate_collection_horizon", "description": "Project the portfolio over the planning horizon under the same targets."},
			},
		},
		"scenario_comparison": map[string]interface{}{
			"title":       "Analytical Workflow: Scenario Comparison",
			"description": "Recommended sequence to compare policy targets against each other.",
			"steps": []interface{}{
				map[string]interface{}{"step": 1, "tool": "get_portfolio_context", "description": "Anchor on the ageing data shape once."},
				map[string]interface{}{"step": 2, "tool": "simulate_collection_horizon", "description": "Run the baseline targets over the horizon."},
				map[string]interface{}{"step": 3, "tool": "simulate_collection_horizon", "description": "Re-run with relaxed or tightened targets and compare the KPI trajectories."},
			},
		},
	}

	res, ok := roadmaps[goal]
	if !ok {
		return nil, fmt.Errorf("unknown goal: %s. Available goals: collection_planning, scenario_comparison", goal)
	}
	return wrapResponse(res, nil, nil, nil), nil
}
