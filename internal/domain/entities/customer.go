package entities

import "time"

// Customer is the policy holder record.
//
// Storage model:
//   - PK: id (sequential per kind, assigned by the store)
//   - unique: lower(email)
//
// Customers are never deleted; policies reference them by id.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerInput carries the writable customer fields of a create request.
type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	Phone     string
}

// CustomerPatch is a partial update; nil fields are left untouched.
type CustomerPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Address   *string
	Phone     *string
}

// Input returns the writable fields of c.
func (c Customer) Input() CustomerInput {
	return CustomerInput{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   c.Address,
		Phone:     c.Phone,
	}
}

// Apply merges the non-nil fields of p into in.
func (p CustomerPatch) Apply(in CustomerInput) CustomerInput {
	if p.FirstName != nil {
		in.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		in.LastName = *p.LastName
	}
	if p.Email != nil {
		in.Email = *p.Email
	}
	if p.Address != nil {
		in.Address = *p.Address
	}
	if p.Phone != nil {
		in.Phone = *p.Phone
	}
	return in
}
