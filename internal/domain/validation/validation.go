// Package validation holds the field rules shared by every create and update
// path. Rules never stop at the first failure: each returns the complete set
// of failing fields.
package validation

import (
	"regexp"
	"strings"

	"insurance_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Field error codes. They are structured data; rendering text is up to the caller.
const (
	CodeRequired          = "required"
	CodeInvalidFormat     = "invalid_format"
	CodeMustBePositive    = "must_be_positive"
	CodeMustBeNonNegative = "must_be_non_negative"
	CodeUnsupportedValue  = "unsupported_value"
	CodeNotFound          = "not_found"
	CodeAlreadyExists     = "already_exists"
)

// Field names as exposed at the boundary.
const (
	FieldFirstName      = "firstName"
	FieldLastName       = "lastName"
	FieldEmail          = "email"
	FieldAddress        = "address"
	FieldPhone          = "phone"
	FieldType           = "type"
	FieldCoverageAmount = "coverageAmount"
	FieldCustomerID     = "customerId"
	FieldDate           = "date"
	FieldDescription    = "description"
	FieldClaimedAmount  = "claimedAmount"
	FieldPolicyID       = "policyId"
	FieldStatus         = "status"
	FieldSettledAmount  = "settledAmount"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Monetary amounts carry at most AmountScale fractional digits and stay
// strictly below MaxAmount in magnitude, so every store keeps them exactly.
const AmountScale = 2

var MaxAmount = decimal.New(1, 12)

// FieldErrors maps a field name to its error code.
type FieldErrors map[string]string

// Add records code for field unless the field already failed.
func (fe FieldErrors) Add(field, code string) {
	if _, ok := fe[field]; !ok {
		fe[field] = code
	}
}

// Merge copies every entry of other that is not yet present.
func (fe FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		fe.Add(k, v)
	}
}

// Empty reports whether no field failed.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// Required checks that s is non-empty after trimming.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// AmountShape checks the scale and magnitude bounds of a monetary amount.
func AmountShape(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountScale)) && d.Abs().LessThan(MaxAmount)
}

// EmailShape checks the local@domain.tld shape.
func EmailShape(s string) bool {
	return emailRx.MatchString(strings.TrimSpace(s))
}

// Customer validates every customer field.
func Customer(in entities.CustomerInput) FieldErrors {
	fe := FieldErrors{}
	if !Required(in.FirstName) {
		fe.Add(FieldFirstName, CodeRequired)
	}
	if !Required(in.LastName) {
		fe.Add(FieldLastName, CodeRequired)
	}
	switch {
	case !Required(in.Email):
		fe.Add(FieldEmail, CodeRequired)
	case !EmailShape(in.Email):
		fe.Add(FieldEmail, CodeInvalidFormat)
	}
	if !Required(in.Address) {
		fe.Add(FieldAddress, CodeRequired)
	}
	if !Required(in.Phone) {
		fe.Add(FieldPhone, CodeRequired)
	}
	return fe
}

// Policy validates every policy field except FK resolution, which needs the store.
func Policy(in entities.PolicyInput) FieldErrors {
	fe := FieldErrors{}
	fe.Merge(in.Undecodable)
	switch {
	case in.Type == "":
		fe.Add(FieldType, CodeRequired)
	case !in.Type.Valid():
		fe.Add(FieldType, CodeUnsupportedValue)
	}
	switch {
	case in.CoverageAmount.IsNegative():
		fe.Add(FieldCoverageAmount, CodeMustBeNonNegative)
	case !AmountShape(in.CoverageAmount):
		fe.Add(FieldCoverageAmount, CodeInvalidFormat)
	}
	if in.CustomerID <= 0 {
		fe.Add(FieldCustomerID, CodeRequired)
	}
	return fe
}

// Claim validates every claim field except FK resolution.
func Claim(in entities.ClaimInput) FieldErrors {
	fe := FieldErrors{}
	fe.Merge(in.Undecodable)
	switch {
	case !Required(in.Date):
		fe.Add(FieldDate, CodeRequired)
	default:
		if _, err := entities.ParseDate(in.Date); err != nil {
			fe.Add(FieldDate, CodeInvalidFormat)
		}
	}
	if !Required(in.Description) {
		fe.Add(FieldDescription, CodeRequired)
	}
	switch {
	case !in.ClaimedAmount.IsPositive():
		fe.Add(FieldClaimedAmount, CodeMustBePositive)
	case !AmountShape(in.ClaimedAmount):
		fe.Add(FieldClaimedAmount, CodeInvalidFormat)
	}
	if in.PolicyID <= 0 {
		fe.Add(FieldPolicyID, CodeRequired)
	}
	return fe
}

// Settlement validates the settled amount of a transition into target.
// Amounts sent with any other target are ignored by the lifecycle engine.
func Settlement(target entities.ClaimStatus, settled *decimal.Decimal) FieldErrors {
	fe := FieldErrors{}
	if !target.Valid() {
		fe.Add(FieldStatus, CodeUnsupportedValue)
		return fe
	}
	if target != entities.ClaimStatusSettled {
		return fe
	}
	switch {
	case settled == nil:
		fe.Add(FieldSettledAmount, CodeRequired)
	case settled.IsNegative():
		fe.Add(FieldSettledAmount, CodeMustBeNonNegative)
	case !AmountShape(*settled):
		fe.Add(FieldSettledAmount, CodeInvalidFormat)
	}
	return fe
}
