package request

import (
	"strings"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"

	"github.com/shopspring/decimal"
)

type ClaimRequest struct {
	Date          string `json:"date" example:"2024-01-05"`
	Description   string `json:"description"`
	ClaimedAmount Amount `json:"claimedAmount" swaggertype:"number"`
	PolicyID      int64  `json:"policyId"`
}

func (r ClaimRequest) ToInput() entities.ClaimInput {
	fe := validation.FieldErrors{}
	r.ClaimedAmount.check(validation.FieldClaimedAmount, false, fe)
	return entities.ClaimInput{
		Date:          r.Date,
		Description:   r.Description,
		ClaimedAmount: r.ClaimedAmount.Value,
		PolicyID:      r.PolicyID,
		Undecodable:   undecodable(fe),
	}
}

// ClaimPatchRequest is the edit-mode payload. Status and SettledAmount go
// through the claim lifecycle.
type ClaimPatchRequest struct {
	Date          *string `json:"date" example:"2024-01-05"`
	Description   *string `json:"description"`
	ClaimedAmount Amount  `json:"claimedAmount" swaggertype:"number"`
	PolicyID      *int64  `json:"policyId"`
	Status        *string `json:"status" enums:"PENDING,APPROVED,REJECTED,SETTLED"`
	SettledAmount Amount  `json:"settledAmount" swaggertype:"number"`
}

func (r ClaimPatchRequest) ToPatch() (entities.ClaimPatch, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	r.ClaimedAmount.check(validation.FieldClaimedAmount, false, fe)
	r.SettledAmount.check(validation.FieldSettledAmount, false, fe)

	patch := entities.ClaimPatch{
		Date:          r.Date,
		Description:   r.Description,
		ClaimedAmount: r.ClaimedAmount.Ptr(),
		PolicyID:      r.PolicyID,
		SettledAmount: r.SettledAmount.Ptr(),
	}
	if r.Status != nil {
		s := parseStatus(*r.Status)
		patch.Status = &s
	}
	return patch, fe
}

// TransitionRequest moves a claim to Status. SettledAmount is required
// when Status is SETTLED and ignored otherwise.
type TransitionRequest struct {
	Status        string `json:"status" enums:"PENDING,APPROVED,REJECTED,SETTLED"`
	SettledAmount Amount `json:"settledAmount" swaggertype:"number"`
}

func (r TransitionRequest) ToTransition() (entities.ClaimStatus, *decimal.Decimal, validation.FieldErrors) {
	fe := validation.FieldErrors{}
	if strings.TrimSpace(r.Status) == "" {
		fe.Add(validation.FieldStatus, validation.CodeRequired)
	}
	r.SettledAmount.check(validation.FieldSettledAmount, false, fe)
	return parseStatus(r.Status), r.SettledAmount.Ptr(), fe
}

// parseStatus keeps unknown values so the lifecycle reports them as
// unsupported instead of silently dropping them.
func parseStatus(raw string) entities.ClaimStatus {
	if s, ok := entities.ParseClaimStatus(raw); ok {
		return s
	}
	return entities.ClaimStatus(strings.ToUpper(strings.TrimSpace(raw)))
}
