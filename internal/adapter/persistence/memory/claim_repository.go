package memory

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"
)

type ClaimRepository struct {
	db *DB
}

var _ interfaces.IClaimRepository = (*ClaimRepository)(nil)

func NewClaimRepository(db *DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.policyAt(c.PolicyID); !ok {
		return entities.Claim{}, interfaces.ErrForeignKeyViolation
	}
	c = cloneClaim(c)
	c.ID = int64(len(r.db.claims)) + 1
	r.db.claims = append(r.db.claims, c)
	return cloneClaim(c), nil
}

func (r *ClaimRepository) GetByID(_ context.Context, id int64) (entities.Claim, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, _ := r.db.claimAt(id)
	return c, nil
}

func (r *ClaimRepository) Update(_ context.Context, id int64, mutate interfaces.ClaimMutation) (entities.Claim, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cur, ok := r.db.claimAt(id)
	if !ok {
		return entities.Claim{}, nil
	}
	next, err := mutate(cur)
	if err != nil {
		return entities.Claim{}, err
	}
	next.ID = cur.ID
	if _, ok := r.db.policyAt(next.PolicyID); !ok {
		return entities.Claim{}, interfaces.ErrForeignKeyViolation
	}
	r.db.claims[id-1] = cloneClaim(next)
	return next, nil
}

func (r *ClaimRepository) List(_ context.Context) ([]entities.Claim, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]entities.Claim, 0, len(r.db.claims))
	for _, c := range r.db.claims {
		out = append(out, cloneClaim(c))
	}
	return out, nil
}

func (r *ClaimRepository) ListByPolicyID(_ context.Context, policyID int64) ([]entities.Claim, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []entities.Claim{}
	for _, c := range r.db.claims {
		if c.PolicyID == policyID {
			out = append(out, cloneClaim(c))
		}
	}
	return out, nil
}

func (r *ClaimRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.db.claims), nil
}
