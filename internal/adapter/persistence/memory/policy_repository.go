package memory

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"
)

type PolicyRepository struct {
	db *DB
}

var _ interfaces.IPolicyRepository = (*PolicyRepository)(nil)

func NewPolicyRepository(db *DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

func (r *PolicyRepository) Create(_ context.Context, p entities.Policy) (entities.Policy, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.customerAt(p.CustomerID); !ok {
		return entities.Policy{}, interfaces.ErrForeignKeyViolation
	}
	p.ID = int64(len(r.db.policies)) + 1
	r.db.policies = append(r.db.policies, p)
	return p, nil
}

func (r *PolicyRepository) GetByID(_ context.Context, id int64) (entities.Policy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, _ := r.db.policyAt(id)
	return p, nil
}

func (r *PolicyRepository) Update(_ context.Context, id int64, mutate interfaces.PolicyMutation) (entities.Policy, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cur, ok := r.db.policyAt(id)
	if !ok {
		return entities.Policy{}, nil
	}
	next, err := mutate(cur)
	if err != nil {
		return entities.Policy{}, err
	}
	next.ID = cur.ID
	if _, ok := r.db.customerAt(next.CustomerID); !ok {
		return entities.Policy{}, interfaces.ErrForeignKeyViolation
	}
	r.db.policies[id-1] = next
	return next, nil
}

func (r *PolicyRepository) List(_ context.Context) ([]entities.Policy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]entities.Policy{}, r.db.policies...), nil
}

func (r *PolicyRepository) ListByCustomerID(_ context.Context, customerID int64) ([]entities.Policy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := []entities.Policy{}
	for _, p := range r.db.policies {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PolicyRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.db.policies), nil
}
