package interfaces

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
)

// ClaimMutation derives the next version of a claim from the stored one.
type ClaimMutation func(current entities.Claim) (entities.Claim, error)

// IClaimRepository abstracts persistence for Claim.
//
// Create and Update fail with ErrForeignKeyViolation when PolicyID does not
// resolve at write time.
type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByID(ctx context.Context, id int64) (entities.Claim, error)
	Update(ctx context.Context, id int64, mutate ClaimMutation) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ListByPolicyID(ctx context.Context, policyID int64) ([]entities.Claim, error)
	Count(ctx context.Context) (int, error)
}
