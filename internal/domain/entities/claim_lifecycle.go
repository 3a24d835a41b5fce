package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransitionNotAllowed is returned when the requested status is not
	// reachable from the current one.
	ErrTransitionNotAllowed = errors.New("claim transition not allowed")
	// ErrSettledAmountRequired is returned when settling without an amount.
	ErrSettledAmountRequired = errors.New("settled amount required")
	// ErrSettledAmountNegative is returned when settling with a negative amount.
	ErrSettledAmountNegative = errors.New("settled amount must be non-negative")
)

// TransitionError describes a rejected (from, to) pair.
type TransitionError struct {
	From ClaimStatus
	To   ClaimStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("claim transition %s -> %s not allowed", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrTransitionNotAllowed }

// NewClaim builds a submitted claim. The status is always PENDING and no
// settled amount is carried, whatever the caller asked for.
func NewClaim(in ClaimInput) (Claim, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return Claim{}, err
	}
	return Claim{
		Date:          date,
		Description:   in.Description,
		ClaimedAmount: in.ClaimedAmount,
		Status:        ClaimStatusPending,
		PolicyID:      in.PolicyID,
	}, nil
}

// CheckTransition validates moving c to next with the given settlement amount
// without mutating c. It is total over (c.Status, next): every pair not in the
// transition table fails.
func CheckTransition(c Claim, next ClaimStatus, settled *decimal.Decimal) error {
	if !c.Status.CanTransitionTo(next) {
		return &TransitionError{From: c.Status, To: next}
	}
	if next != ClaimStatusSettled {
		return nil
	}
	if settled == nil {
		return ErrSettledAmountRequired
	}
	if settled.IsNegative() {
		return ErrSettledAmountNegative
	}
	return nil
}

// Transition moves c to next. Entering SETTLED records settled; any other
// target clears a previously stored amount.
func Transition(c Claim, next ClaimStatus, settled *decimal.Decimal) (Claim, error) {
	if err := CheckTransition(c, next, settled); err != nil {
		return c, err
	}
	c.Status = next
	if next == ClaimStatusSettled {
		amount := *settled
		c.SettledAmount = &amount
	} else {
		c.SettledAmount = nil
	}
	return c, nil
}
