package memory

import (
	"context"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"
)

type CustomerRepository struct {
	db *DB
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := emailKey(c.Email)
	if _, taken := r.db.emails[key]; taken {
		return entities.Customer{}, interfaces.ErrEmailTaken
	}
	c.ID = int64(len(r.db.customers)) + 1
	r.db.customers = append(r.db.customers, c)
	r.db.emails[key] = c.ID
	return c, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id int64) (entities.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, _ := r.db.customerAt(id)
	return c, nil
}

func (r *CustomerRepository) Update(_ context.Context, id int64, mutate interfaces.CustomerMutation) (entities.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cur, ok := r.db.customerAt(id)
	if !ok {
		return entities.Customer{}, nil
	}
	next, err := mutate(cur)
	if err != nil {
		return entities.Customer{}, err
	}
	next.ID = cur.ID

	oldKey, newKey := emailKey(cur.Email), emailKey(next.Email)
	if oldKey != newKey {
		if _, taken := r.db.emails[newKey]; taken {
			return entities.Customer{}, interfaces.ErrEmailTaken
		}
		delete(r.db.emails, oldKey)
		r.db.emails[newKey] = cur.ID
	}
	r.db.customers[id-1] = next
	return next, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]entities.Customer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return append([]entities.Customer{}, r.db.customers...), nil
}

func (r *CustomerRepository) Count(_ context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return len(r.db.customers), nil
}
