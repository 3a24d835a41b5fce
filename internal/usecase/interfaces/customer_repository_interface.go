package interfaces

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
)

// CustomerMutation derives the next version of a customer from the stored one.
// Returning an error aborts the write and leaves the stored record untouched.
type CustomerMutation func(current entities.Customer) (entities.Customer, error)

// ICustomerRepository abstracts persistence for Customer.
//
// Conventions shared by every repository:
//   - a missing record is reported as the zero entity (ID == 0) and a nil error
//   - Create assigns the next sequential id of the kind
//   - List returns insertion (ascending id) order
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	Update(ctx context.Context, id int64, mutate CustomerMutation) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Count(ctx context.Context) (int, error)
}
