package mcp

import (
	"fmt"
	"math"

	"aropt-mcp/internal/optimizer"
	"aropt-mcp/internal/portfolio"
)

// resolveBalances picks the balance source for a tool call: explicit balances
// win over a CSV path, and the built-in sample is the fallback. The returned
// source tag tells the client what was actually used.
func (s *Server) resolveBalances(args map[string]interface{}) (portfolio.BalanceVector, string, error) {
	if raw, ok := args["balances"].(map[string]interface{}); ok && len(raw) > 0 {
		bal := make(portfolio.BalanceVector, len(raw))
		for bucket, v := range raw {
			f, ok := asFloat(v)
			if !ok {
				return nil, "", fmt.Errorf("balance for bucket %q is not a number", bucket)
			}
			bal[bucket] = f
		}
		if err := bal.Validate(s.set); err != nil {
			return nil, "", fmt.Errorf("invalid balances: %w", err)
		}
		return bal, "inline", nil
	}

	if path := asString(args["csv_path"]); path != "" {
		bal, err := portfolio.LoadCSV(path, s.set)
		if err != nil {
			return nil, "", err
		}
		return bal, path, nil
	}

	return portfolio.Sample(), "sample", nil
}

// resolveTargets merges tool-call targets over the configured defaults.
func (s *Server) resolveTargets(args map[string]interface{}) optimizer.Targets {
	t := optimizer.Targets{
		TargetCurrentRatio: s.cfg.TargetCurrentRatio,
		MaxPastDueRatio:    s.cfg.MaxPastDueRatio,
	}
	if v, ok := asFloat(args["target_current_ratio"]); ok {
		t.TargetCurrentRatio = v
	}
	if v, ok := asFloat(args["max_past_due_ratio"]); ok {
		t.MaxPastDueRatio = v
	}
	if v, ok := asFloat(args["max_past_due_amount"]); ok {
		t.MaxPastDueAmount = &v
	}
	return t
}

func parseWeights(raw interface{}) optimizer.Weights {
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) == 0 {
		return nil
	}
	w := make(optimizer.Weights, len(m))
	for bucket, v := range m {
		if f, ok := asFloat(v); ok {
			w[bucket] = f
		}
	}
	return w
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	default:
		return 0, false
	}
}

func asInt(v interface{}) int {
	if v == nil {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		var res int
		fmt.Sscanf(val, "%d", &res)
		return res
	default:
		return 0
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}
