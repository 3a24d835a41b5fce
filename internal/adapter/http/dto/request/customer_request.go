package request

import "insurance_backoffice/internal/domain/entities"

type CustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

func (r CustomerRequest) ToInput() entities.CustomerInput {
	return entities.CustomerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Address:   r.Address,
		Phone:     r.Phone,
	}
}

// CustomerPatchRequest is a partial update; absent fields keep their value.
type CustomerPatchRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

func (r CustomerPatchRequest) ToPatch() entities.CustomerPatch {
	return entities.CustomerPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Address:   r.Address,
		Phone:     r.Phone,
	}
}
