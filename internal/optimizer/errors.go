package optimizer

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed or incomplete input. It is detected before
// the solver is invoked and never reaches the optimisation layer.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// InfeasibleError reports that no assignment of recovery fractions in [0,1]
// satisfies all policy targets simultaneously. It carries the targets, the
// total exposure and the name(s) of the constraint(s) that cannot be met, so
// the caller can render a precise message and relax the right knob.
type InfeasibleError struct {
	Targets       Targets
	TotalExposure float64
	Binding       []string
}

func (e *InfeasibleError) Error() string {
	msg := fmt.Sprintf(
		"no feasible recovery plan: target_current_ratio=%.4f, max_past_due_ratio=%.4f",
		e.Targets.TargetCurrentRatio, e.Targets.MaxPastDueRatio,
	)
	if e.Targets.MaxPastDueAmount != nil {
		msg += fmt.Sprintf(", max_past_due_amount=%.2f", *e.Targets.MaxPastDueAmount)
	}
	msg += fmt.Sprintf(" (total exposure %.2f)", e.TotalExposure)
	if len(e.Binding) > 0 {
		msg += "; binding constraint(s): " + strings.Join(e.Binding, ", ")
	}
	return msg
}

// SolverError reports an abnormal solver termination unrelated to feasibility.
// It is fatal for the current call and is not retried.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	return "solver failure: " + e.Err.Error()
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
