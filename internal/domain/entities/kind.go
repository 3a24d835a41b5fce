package entities

import "strings"

// Kind names an entity collection of the store.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindPolicy   Kind = "policy"
	KindClaim    Kind = "claim"
)

// ParseKind accepts singular or plural spellings, case-insensitive.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "customer", "customers":
		return KindCustomer, true
	case "policy", "policies":
		return KindPolicy, true
	case "claim", "claims":
		return KindClaim, true
	}
	return "", false
}
