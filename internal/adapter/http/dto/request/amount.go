package request

import (
	"bytes"

	"insurance_backoffice/internal/domain/validation"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value accepted as a JSON number or numeric string.
// An unparsable value is kept as Set && !Valid so it can be reported as a
// field error together with the other fields.
type Amount struct {
	Set   bool
	Valid bool
	Value decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*a = Amount{}
		return nil
	}
	a.Set = true
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		a.Valid = false
		return nil
	}
	a.Valid = true
	a.Value = d
	return nil
}

// Ptr returns the parsed value, or nil when the field was absent or invalid.
func (a Amount) Ptr() *decimal.Decimal {
	if !a.Set || !a.Valid {
		return nil
	}
	v := a.Value
	return &v
}

// check records field errors for an invalid (or, when required, missing) amount.
func (a Amount) check(field string, required bool, fe validation.FieldErrors) {
	switch {
	case !a.Set && required:
		fe.Add(field, validation.CodeRequired)
	case a.Set && !a.Valid:
		fe.Add(field, validation.CodeInvalidFormat)
	}
}

// undecodable returns fe, or nil when nothing failed to decode.
func undecodable(fe validation.FieldErrors) map[string]string {
	if fe.Empty() {
		return nil
	}
	return fe
}
