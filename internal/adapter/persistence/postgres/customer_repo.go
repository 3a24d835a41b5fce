package postgres

import (
	"context"
	"errors"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepo struct{ db *gorm.DB }

var _ interfaces.ICustomerRepository = (*CustomerRepo)(nil)

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	m := toCustomerModel(c)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Customer{}, translate(err)
	}
	return m.entity(), nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return m.entity(), nil
}

func (r *CustomerRepo) Update(ctx context.Context, id int64, mutate interfaces.CustomerMutation) (entities.Customer, error) {
	var out entities.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur customerModel
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
		m := toCustomerModel(next)
		if err := tx.Save(&m).Error; err != nil {
			return translate(err)
		}
		out = m.entity()
		return nil
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return out, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]entities.Customer, error) {
	var ms []customerModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.entity())
	}
	return out, nil
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&customerModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
