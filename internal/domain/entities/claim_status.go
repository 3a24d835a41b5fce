package entities

import "strings"

// ClaimStatus is the lifecycle state of a claim.
//
// Lifecycle:
//
//	PENDING --> APPROVED --> SETTLED
//	   \
//	    `-----> REJECTED
//
// SETTLED and REJECTED are terminal. Every state may be re-saved onto itself.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
	ClaimStatusSettled  ClaimStatus = "SETTLED"
)

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusPending:  {ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusApproved: {ClaimStatusApproved, ClaimStatusSettled},
	ClaimStatusRejected: {ClaimStatusRejected},
	ClaimStatusSettled:  {ClaimStatusSettled},
}

// ParseClaimStatus normalizes raw; ok is false for unknown values.
func ParseClaimStatus(raw string) (ClaimStatus, bool) {
	s := ClaimStatus(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := claimTransitions[s]
	return s, ok
}

// Valid reports whether s is a known status.
func (s ClaimStatus) Valid() bool {
	_, ok := claimTransitions[s]
	return ok
}

// Terminal reports whether s has no way out other than itself.
func (s ClaimStatus) Terminal() bool {
	return s == ClaimStatusRejected || s == ClaimStatusSettled
}

// CanTransitionTo reports whether next is reachable from s. Unknown states
// on either side are never reachable.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	for _, allowed := range claimTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
