package postgres

import (
	"context"
	"errors"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepo struct{ db *gorm.DB }

var _ interfaces.IClaimRepository = (*ClaimRepo)(nil)

func NewClaimRepo(db *gorm.DB) *ClaimRepo { return &ClaimRepo{db: db} }

func (r *ClaimRepo) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	m := toClaimModel(c)
	m.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return entities.Claim{}, translate(err)
	}
	return m.entity(), nil
}

func (r *ClaimRepo) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	var m claimModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, err
	}
	return m.entity(), nil
}

// Update holds the row lock while the lifecycle check inside mutate runs.
func (r *ClaimRepo) Update(ctx context.Context, id int64, mutate interfaces.ClaimMutation) (entities.Claim, error) {
	var out entities.Claim
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur claimModel
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
		m := toClaimModel(next)
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return translate(err)
		}
		out = m.entity()
		return nil
	})
	if err != nil {
		return entities.Claim{}, err
	}
	return out, nil
}

func (r *ClaimRepo) List(ctx context.Context) ([]entities.Claim, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *ClaimRepo) ListByPolicyID(ctx context.Context, policyID int64) ([]entities.Claim, error) {
	return r.find(r.db.WithContext(ctx).Where("policy_id = ?", policyID))
}

func (r *ClaimRepo) find(q *gorm.DB) ([]entities.Claim, error) {
	var ms []claimModel
	if err := q.Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Claim, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.entity())
	}
	return out, nil
}

func (r *ClaimRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&claimModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
