package postgres

import (
	"context"
	"errors"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PolicyRepo struct{ db *gorm.DB }

var _ interfaces.IPolicyRepository = (*PolicyRepo)(nil)

func NewPolicyRepo(db *gorm.DB) *PolicyRepo { return &PolicyRepo{db: db} }

// Associations are omitted on every write so the zero Customer field never
// upserts a row; the foreign key constraint alone guards the owner.
func (r *PolicyRepo) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	m := toPolicyModel(p)
	m.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return entities.Policy{}, translate(err)
	}
	return m.entity(), nil
}

func (r *PolicyRepo) GetByID(ctx context.Context, id int64) (entities.Policy, error) {
	var m policyModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Policy{}, nil
		}
		return entities.Policy{}, err
	}
	return m.entity(), nil
}

func (r *PolicyRepo) Update(ctx context.Context, id int64, mutate interfaces.PolicyMutation) (entities.Policy, error) {
	var out entities.Policy
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur policyModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cur, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		next, err := mutate(cur.entity())
		if err != nil {
			return err
		}
		next.ID = cur.ID
		m := toPolicyModel(next)
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return translate(err)
		}
		out = m.entity()
		return nil
	})
	if err != nil {
		return entities.Policy{}, err
	}
	return out, nil
}

func (r *PolicyRepo) List(ctx context.Context) ([]entities.Policy, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *PolicyRepo) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Policy, error) {
	return r.find(r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *PolicyRepo) find(q *gorm.DB) ([]entities.Policy, error) {
	var ms []policyModel
	if err := q.Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Policy, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.entity())
	}
	return out, nil
}

func (r *PolicyRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&policyModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
