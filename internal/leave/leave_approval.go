package leave

import (
	"context"
	"fmt"

	leaveerrors "hris-console/internal/leave/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Target is the status a decision moves a request to.
func (d Decision) Target() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// CanTransition reports whether a request in from may be decided. Only
// pending requests have outgoing transitions.
func CanTransition(from Status, d Decision) bool {
	if from != StatusPending {
		return false
	}
	return d == DecisionApprove || d == DecisionReject
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Confirmed answers every prompt with answer. HTTP clients send their
// answer up front in the request body.
func Confirmed(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) (bool, error) {
		return answer, nil
	})
}

// checkSubstitute enforces the annual-leave gate: no approval is submitted
// until a substitute has been chosen.
func checkSubstitute(leaveType LeaveType, d Decision, sub *Substitute) error {
	if d != DecisionApprove || !leaveType.RequiresSubstitute() {
		return nil
	}
	if sub == nil || sub.EmployeeID == "" {
		return leaveerrors.ErrSubstituteRequired
	}
	return nil
}

func decisionPrompt(leaveType LeaveType, d Decision, id string, sub *Substitute) string {
	if d == DecisionApprove && sub != nil && sub.EmployeeID != "" {
		name := sub.Name
		if name == "" {
			name = sub.EmployeeID
		}
		return fmt.Sprintf("Approve %s leave %s with %s as substitute?", leaveType.Slug(), id, name)
	}
	return fmt.Sprintf("%s %s leave %s?", cases.Title(language.English).String(string(d)), leaveType.Slug(), id)
}

// MutationOutcome is the result of a verb. Applied is false when the operator
// declined the confirmation; Rows is the freshly reloaded list otherwise.
type MutationOutcome struct {
	Applied bool         `json:"applied"`
	Record  *DisplayRow  `json:"record,omitempty"`
	Rows    []DisplayRow `json:"rows"`
}
