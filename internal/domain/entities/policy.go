package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PolicyType is the coverage category of a policy.
type PolicyType string

const (
	PolicyTypeAuto   PolicyType = "auto"
	PolicyTypeHome   PolicyType = "home"
	PolicyTypeLife   PolicyType = "life"
	PolicyTypeHealth PolicyType = "health"
	PolicyTypeTravel PolicyType = "travel"
)

var policyTypes = []PolicyType{
	PolicyTypeAuto,
	PolicyTypeHome,
	PolicyTypeLife,
	PolicyTypeHealth,
	PolicyTypeTravel,
}

// PolicyTypes lists the accepted policy types.
func PolicyTypes() []PolicyType {
	return append([]PolicyType(nil), policyTypes...)
}

// NormalizePolicyType lowercases and trims raw; it does not check membership.
func NormalizePolicyType(raw string) PolicyType {
	return PolicyType(strings.ToLower(strings.TrimSpace(raw)))
}

// Valid reports whether t is one of the enumerated policy types.
func (t PolicyType) Valid() bool {
	for _, known := range policyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Policy is a coverage contract owned by exactly one customer.
//
// Storage model:
//   - PK: id
//   - FK: customer_id -> customers.id
type Policy struct {
	ID             int64           `json:"id"`
	Type           PolicyType      `json:"type"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	CustomerID     int64           `json:"customer_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PolicyInput carries the writable policy fields of a create request.
type PolicyInput struct {
	Type           PolicyType
	CoverageAmount decimal.Decimal
	CustomerID     int64

	// Undecodable maps fields the boundary could not decode to their error
	// code. They are reported together with the rule failures.
	Undecodable map[string]string
}

// PolicyPatch is a partial update; nil fields are left untouched.
type PolicyPatch struct {
	Type           *PolicyType
	CoverageAmount *decimal.Decimal
	CustomerID     *int64
}

// PolicyWithCustomer pairs a policy with its owner, as shown by policy pickers.
type PolicyWithCustomer struct {
	Policy   Policy
	Customer Customer
}

// Input returns the writable fields of p.
func (p Policy) Input() PolicyInput {
	return PolicyInput{Type: p.Type, CoverageAmount: p.CoverageAmount, CustomerID: p.CustomerID}
}

// Apply merges the non-nil fields of p into in.
func (p PolicyPatch) Apply(in PolicyInput) PolicyInput {
	if p.Type != nil {
		in.Type = *p.Type
	}
	if p.CoverageAmount != nil {
		in.CoverageAmount = *p.CoverageAmount
	}
	if p.CustomerID != nil {
		in.CustomerID = *p.CustomerID
	}
	return in
}
