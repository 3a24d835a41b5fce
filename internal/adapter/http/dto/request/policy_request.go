package request

import (
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
)

type PolicyRequest struct {
	Type           string `json:"type"`
	CoverageAmount Amount `json:"coverageAmount" swaggertype:"number"`
	CustomerID     int64  `json:"customerId"`
}

// ToInput converts the payload. Values that could not be decoded travel in
// Undecodable; every other rule is left to the use case.
func (r PolicyRequest) ToInput() entities.PolicyInput {
	fe := validation.FieldErrors{}
	r.CoverageAmount.check(validation.FieldCoverageAmount, true, fe)
	return entities.PolicyInput{
		Type:           entities.NormalizePolicyType(r.Type),
		CoverageAmount: r.CoverageAmount.Value,
		CustomerID:     r.CustomerID,
		Undecodable:    undecodable(fe),
	}
}

type PolicyPatchRequest struct {
	Type           *string `json:"type"`
	CoverageAmount Amount  `json:"coverageAmount" swaggertype:"number"`
	CustomerID     *int64  `json:"customerId"`
}

func (r PolicyPatchRequest) ToPatch() (entities.PolicyPatch, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	r.CoverageAmount.check(validation.FieldCoverageAmount, false, fe)

	patch := entities.PolicyPatch{
		CoverageAmount: r.CoverageAmount.Ptr(),
		CustomerID:     r.CustomerID,
	}
	if r.Type != nil {
		t := entities.NormalizePolicyType(*r.Type)
		patch.Type = &t
	}
	return patch, fe
}
