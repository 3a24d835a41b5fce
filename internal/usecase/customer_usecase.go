package usecase

import (
	"context"
	"errors"
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// ICustomerUseCase exposes customer operations.
//
// Create and Update run the same validation rules, so a record accepted by one
// path is always accepted by the other.
type ICustomerUseCase interface {
	Create(ctx context.Context, in entities.CustomerInput) (entities.Customer, error)
	Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo    interfaces.ICustomerRepository
	metrics interfaces.IMetricsRecorder
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, metrics interfaces.IMetricsRecorder) *CustomerUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &CustomerUseCase{repo: repo, metrics: metrics}
}

func (u *CustomerUseCase) Create(ctx context.Context, in entities.CustomerInput) (entities.Customer, error) {
	if fe := validation.Customer(in); !fe.Empty() {
		zerolog.Ctx(ctx).Debug().Interface("fields", fe).Msg("[customer][usecase] create rejected")
		u.metrics.OperationRejected(entities.KindCustomer, "validation")
		return entities.Customer{}, newValidationError(fe)
	}

	now := time.Now().UTC()
	c := entities.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrEmailTaken) {
			u.metrics.OperationRejected(entities.KindCustomer, "validation")
			return entities.Customer{}, fieldError(validation.FieldEmail, validation.CodeAlreadyExists)
		}
		zerolog.Ctx(ctx).Error().Err(err).Msg("[customer][usecase] create failed")
		return entities.Customer{}, err
	}

	u.metrics.EntityCreated(entities.KindCustomer)
	zerolog.Ctx(ctx).Info().Int64("customer_id", created.ID).Msg("[customer][usecase] created")
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidID
	}

	now := time.Now().UTC()
	updated, err := u.repo.Update(ctx, id, func(cur entities.Customer) (entities.Customer, error) {
		in := patch.Apply(cur.Input())
		if fe := validation.Customer(in); !fe.Empty() {
			return cur, newValidationError(fe)
		}
		cur.FirstName = in.FirstName
		cur.LastName = in.LastName
		cur.Email = in.Email
		cur.Address = in.Address
		cur.Phone = in.Phone
		cur.UpdatedAt = now
		return cur, nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrEmailTaken) {
			err = fieldError(validation.FieldEmail, validation.CodeAlreadyExists)
		}
		if errors.Is(err, ErrValidation) {
			u.metrics.OperationRejected(entities.KindCustomer, "validation")
		}
		zerolog.Ctx(ctx).Debug().Err(err).Int64("customer_id", id).Msg("[customer][usecase] update rejected")
		return entities.Customer{}, err
	}
	if updated.ID == 0 {
		return entities.Customer{}, &NotFoundError{Kind: entities.KindCustomer, ID: id}
	}

	zerolog.Ctx(ctx).Info().Int64("customer_id", id).Msg("[customer][usecase] updated")
	return updated, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, &NotFoundError{Kind: entities.KindCustomer, ID: id}
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}
