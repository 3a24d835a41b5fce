package interfaces

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
)

// PolicyMutation derives the next version of a policy from the stored one.
type PolicyMutation func(current entities.Policy) (entities.Policy, error)

// IPolicyRepository abstracts persistence for Policy.
//
// Create and Update fail with ErrForeignKeyViolation when CustomerID does not
// resolve at write time.
type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByID(ctx context.Context, id int64) (entities.Policy, error)
	Update(ctx context.Context, id int64, mutate PolicyMutation) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Policy, error)
	Count(ctx context.Context) (int, error)
}
