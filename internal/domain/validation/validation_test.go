package validation

import (
	"testing"

	"insurance_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomer(t *testing.T) {
	valid := entities.CustomerInput{FirstName: "Amal", LastName: "B", Email: "a@b.com", Address: "x", Phone: "1"}
	assert.True(t, Customer(valid).Empty())

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"missing", "   ", CodeRequired},
		{"no at", "ab.com", CodeInvalidFormat},
		{"no tld", "a@b", CodeInvalidFormat},
		{"inner space", "a b@c.com", CodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Email = tt.email
			fe := Customer(in)
			assert.Equal(t, FieldErrors{FieldEmail: tt.want}, fe)
		})
	}

	fe := Customer(entities.CustomerInput{})
	assert.Len(t, fe, 5, "every field is reported at once")
}

func TestPolicy(t *testing.T) {
	assert.True(t, Policy(entities.PolicyInput{Type: entities.PolicyTypeTravel, CustomerID: 1}).Empty())

	fe := Policy(entities.PolicyInput{CoverageAmount: decimal.NewFromFloat(-0.01)})
	assert.Equal(t, FieldErrors{
		FieldType:           CodeRequired,
		FieldCoverageAmount: CodeMustBeNonNegative,
		FieldCustomerID:     CodeRequired,
	}, fe)

	fe = Policy(entities.PolicyInput{Type: "boat", CustomerID: 2})
	assert.Equal(t, FieldErrors{FieldType: CodeUnsupportedValue}, fe)
}

func TestClaim(t *testing.T) {
	valid := entities.ClaimInput{Date: "2024-02-29", Description: "hail", ClaimedAmount: decimal.RequireFromString("0.01"), PolicyID: 1}
	assert.True(t, Claim(valid).Empty())

	fe := Claim(entities.ClaimInput{Date: "2023-02-29", ClaimedAmount: decimal.NewFromInt(-3)})
	assert.Equal(t, FieldErrors{
		FieldDate:          CodeInvalidFormat,
		FieldDescription:   CodeRequired,
		FieldClaimedAmount: CodeMustBePositive,
		FieldPolicyID:      CodeRequired,
	}, fe)

	assert.Equal(t, CodeRequired, Claim(entities.ClaimInput{})[FieldDate])
}

func TestSettlement(t *testing.T) {
	neg := decimal.NewFromInt(-10)
	zero := decimal.Zero

	assert.Equal(t, FieldErrors{FieldSettledAmount: CodeRequired}, Settlement(entities.ClaimStatusSettled, nil))
	assert.Equal(t, FieldErrors{FieldSettledAmount: CodeMustBeNonNegative}, Settlement(entities.ClaimStatusSettled, &neg))
	assert.True(t, Settlement(entities.ClaimStatusSettled, &zero).Empty())
	assert.True(t, Settlement(entities.ClaimStatusApproved, &neg).Empty())
	assert.Equal(t, FieldErrors{FieldStatus: CodeUnsupportedValue}, Settlement("CLOSED", nil))
}

func TestFieldErrorsKeepFirstCode(t *testing.T) {
	fe := FieldErrors{}
	fe.Add(FieldEmail, CodeInvalidFormat)
	fe.Add(FieldEmail, CodeAlreadyExists)
	fe.Merge(FieldErrors{FieldEmail: CodeRequired, FieldPhone: CodeRequired})

	assert.Equal(t, FieldErrors{FieldEmail: CodeInvalidFormat, FieldPhone: CodeRequired}, fe)
}

func TestAmountShape(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"0", true},
		{"0.01", true},
		{"450.50", true},
		{"1.500", true},
		{"999999999999.99", true},
		{"-999999999999.99", true},
		{"0.004", false},
		{"10.125", false},
		{"1000000000000", false},
		{"-1000000000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountShape(decimal.RequireFromString(tt.raw)))
		})
	}
}

func TestAmountsOutsideStorableRange(t *testing.T) {
	tiny := decimal.RequireFromString("0.004")
	huge := decimal.RequireFromString("1000000000000")

	fe := Claim(entities.ClaimInput{Date: "2024-01-05", Description: "hail", ClaimedAmount: tiny, PolicyID: 1})
	assert.Equal(t, FieldErrors{FieldClaimedAmount: CodeInvalidFormat}, fe)

	fe = Policy(entities.PolicyInput{Type: entities.PolicyTypeHome, CoverageAmount: huge, CustomerID: 1})
	assert.Equal(t, FieldErrors{FieldCoverageAmount: CodeInvalidFormat}, fe)

	assert.Equal(t, FieldErrors{FieldSettledAmount: CodeInvalidFormat}, Settlement(entities.ClaimStatusSettled, &tiny))
	assert.Equal(t, FieldErrors{FieldSettledAmount: CodeInvalidFormat}, Settlement(entities.ClaimStatusSettled, &huge))
}

func TestUndecodableFieldsAreReportedWithRules(t *testing.T) {
	fe := Claim(entities.ClaimInput{
		Date:        "2024-13-05",
		Description: "  ",
		PolicyID:    99,
		Undecodable: map[string]string{FieldClaimedAmount: CodeInvalidFormat},
	})
	assert.Equal(t, FieldErrors{
		FieldClaimedAmount: CodeInvalidFormat,
		FieldDate:          CodeInvalidFormat,
		FieldDescription:   CodeRequired,
	}, fe)

	fe = Policy(entities.PolicyInput{
		Type:        entities.PolicyTypeAuto,
		CustomerID:  1,
		Undecodable: map[string]string{FieldCoverageAmount: CodeRequired},
	})
	assert.Equal(t, FieldErrors{FieldCoverageAmount: CodeRequired}, fe)
}
