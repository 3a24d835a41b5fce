package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format of Claim.Date.
const DateLayout = "2006-01-02"

// Claim is a request for compensation tied to a policy.
//
// Storage model:
//   - PK: id
//   - FK: policy_id -> policies.id
//
// SettledAmount is non-nil iff Status is ClaimStatusSettled; the lifecycle
// engine in claim_lifecycle.go is the only writer of Status and SettledAmount.
type Claim struct {
	ID            int64            `json:"id"`
	Date          time.Time        `json:"date"`
	Description   string           `json:"description"`
	ClaimedAmount decimal.Decimal  `json:"claimed_amount"`
	Status        ClaimStatus      `json:"status"`
	SettledAmount *decimal.Decimal `json:"settled_amount,omitempty"`
	PolicyID      int64            `json:"policy_id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ClaimInput carries the writable claim fields. Date stays raw so an
// unparsable value is reported as a field error instead of a decode error.
type ClaimInput struct {
	Date          string
	Description   string
	ClaimedAmount decimal.Decimal
	PolicyID      int64

	// Undecodable maps fields the boundary could not decode to their error
	// code, as in PolicyInput.
	Undecodable map[string]string
}

// ClaimPatch is an edit-mode update. Status and SettledAmount are routed
// through the lifecycle engine; the other fields through the claim rules.
type ClaimPatch struct {
	Date          *string
	Description   *string
	ClaimedAmount *decimal.Decimal
	PolicyID      *int64
	Status        *ClaimStatus
	SettledAmount *decimal.Decimal
}

// Input returns the writable fields of c.
func (c Claim) Input() ClaimInput {
	date := ""
	if !c.Date.IsZero() {
		date = c.Date.Format(DateLayout)
	}
	return ClaimInput{
		Date:          date,
		Description:   c.Description,
		ClaimedAmount: c.ClaimedAmount,
		PolicyID:      c.PolicyID,
	}
}

// Apply merges the non-lifecycle fields of p into in.
func (p ClaimPatch) Apply(in ClaimInput) ClaimInput {
	if p.Date != nil {
		in.Date = *p.Date
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.ClaimedAmount != nil {
		in.ClaimedAmount = *p.ClaimedAmount
	}
	if p.PolicyID != nil {
		in.PolicyID = *p.PolicyID
	}
	return in
}

// HasLifecycleChange reports whether p asks for a status change or re-save.
func (p ClaimPatch) HasLifecycleChange() bool {
	return p.Status != nil || p.SettledAmount != nil
}

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
}
