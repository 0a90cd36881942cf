package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "get_portfolio_context",
				"description": "Load an accounts-receivable ageing portfolio (from a CSV file or the built-in sample) and return its shape: bucket balances, total exposure and per-bucket shares. " +
					"Guidance: call this first to anchor on the data before optimising or simulating.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"csv_path": map[string]interface{}{"type": "string", "description": "Optional: path to a bucket,balance CSV. Omit to use the built-in sample portfolio."},
					},
				},
			},
			map[string]interface{}{
				"name": "optimise_recovery_plan",
				"description": "Compute the minimum-effort collection plan for ONE period as a linear program: per-bucket recovery fractions (0..1) that meet the current-ratio target and the 120+ past-due cap at the lowest weighted workload. \n\n" +
					"STRICT GUARDRAIL: YOU MUST NEVER INVENT RECOVERY FRACTIONS OR KPI VALUES YOURSELF. " +
					"If the tool reports that the targets are infeasible, report the binding constraint(s) to the user and suggest relaxing them; DO NOT substitute your own plan.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"csv_path":             map[string]interface{}{"type": "string", "description": "Optional: path to a bucket,balance CSV."},
						"balances":             map[string]interface{}{"type": "object", "description": "Optional: explicit bucket balances (e.g. {\"current\": 100000, \"31_60\": 5000, ...}). Takes precedence over csv_path.", "additionalProperties": map[string]interface{}{"type": "number"}},
						"target_current_ratio": map[string]interface{}{"type": "number", "description": "Minimum fraction of total exposure in 'current' after the plan (0..1). Default from server config."},
						"max_past_due_ratio":   map[string]interface{}{"type": "number", "description": "Maximum fraction of total exposure left uncollected in the 120+ bucket (0..1). Default from server config."},
						"max_past_due_amount":  map[string]interface{}{"type": "number", "description": "Optional: absolute currency cap on the uncollected 120+ balance. The tighter of ratio and amount binds."},
						"weights":              map[string]interface{}{"type": "object", "description": "Optional: per-bucket effort weights overriding the defaults (0.8 youngest overdue .. 4.0 for 120+).", "additionalProperties": map[string]interface{}{"type": "number"}},
					},
				},
			},
			map[string]interface{}{
				"name": "simulate_collection_horizon",
				"description": "Project the portfolio over N periods: each period is optimised, recovered cash is reinjected as fresh current sales, and uncollected balances age one bucket step (roll-forward). " +
					"Returns the per-period history, the actionable month-1 plan and the projected end-state KPIs. \n\n" +
					"MODEL LIMITATION: slippage from 'current' into the youngest overdue bucket is NOT modeled; mention this when presenting long-horizon projections. \n" +
					"STRICT GUARDRAIL: if a period is infeasible the simulation halts there; report the failing period instead of extrapolating.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"csv_path":             map[string]interface{}{"type": "string", "description": "Optional: path to a bucket,balance CSV."},
						"balances":             map[string]interface{}{"type": "object", "description": "Optional: explicit bucket balances. Takes precedence over csv_path.", "additionalProperties": map[string]interface{}{"type": "number"}},
						"periods":              map[string]interface{}{"type": "integer", "description": "Number of periods to simulate (typical horizons: 1, 3, 6, 12)."},
						"target_current_ratio": map[string]interface{}{"type": "number", "description": "Policy target held constant across all periods (0..1)."},
						"max_past_due_ratio":   map[string]interface{}{"type": "number", "description": "Past-due cap held constant across all periods (0..1)."},
						"max_past_due_amount":  map[string]interface{}{"type": "number", "description": "Optional: absolute currency cap on the uncollected 120+ balance."},
						"weights":              map[string]interface{}{"type": "object", "description": "Optional: per-bucket effort weights overriding the defaults.", "additionalProperties": map[string]interface{}{"type": "number"}},
					},
					"required": []string{"periods"},
				},
			},
			map[string]interface{}{
				"name":        "get_analysis_roadmap",
				"description": "Get the recommended tool sequence for a given analysis goal. Available goals: collection_planning, scenario_comparison.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"goal": map[string]interface{}{"type": "string", "description": "The analysis goal"},
					},
					"required": []string{"goal"},
				},
			},
		},
	}
}
