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

// IPolicyUseCase exposes policy operations.
type IPolicyUseCase interface {
	Create(ctx context.Context, in entities.PolicyInput) (entities.Policy, error)
	Update(ctx context.Context, id int64, patch entities.PolicyPatch) (entities.Policy, error)
	GetByID(ctx context.Context, id int64) (entities.Policy, error)
	List(ctx context.Context) ([]entities.Policy, error)
	ListWithCustomers(ctx context.Context) ([]entities.PolicyWithCustomer, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Policy, error)
}

type PolicyUseCase struct {
	repo      interfaces.IPolicyRepository
	customers interfaces.ICustomerRepository
	metrics   interfaces.IMetricsRecorder
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, customers interfaces.ICustomerRepository, metrics interfaces.IMetricsRecorder) *PolicyUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &PolicyUseCase{repo: repo, customers: customers, metrics: metrics}
}

func (u *PolicyUseCase) Create(ctx context.Context, in entities.PolicyInput) (entities.Policy, error) {
	fe, err := u.validate(ctx, in)
	if err != nil {
		return entities.Policy{}, err
	}
	if !fe.Empty() {
		zerolog.Ctx(ctx).Debug().Interface("fields", fe).Msg("[policy][usecase] create rejected")
		u.metrics.OperationRejected(entities.KindPolicy, "validation")
		return entities.Policy{}, newValidationError(fe)
	}

	now := time.Now().UTC()
	p := entities.Policy{
		Type:           in.Type,
		CoverageAmount: in.CoverageAmount,
		CustomerID:     in.CustomerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			u.metrics.OperationRejected(entities.KindPolicy, "integrity")
			return entities.Policy{}, &IntegrityError{Field: validation.FieldCustomerID, Ref: in.CustomerID}
		}
		zerolog.Ctx(ctx).Error().Err(err).Msg("[policy][usecase] create failed")
		return entities.Policy{}, err
	}

	u.metrics.EntityCreated(entities.KindPolicy)
	zerolog.Ctx(ctx).Info().Int64("policy_id", created.ID).Int64("customer_id", created.CustomerID).Msg("[policy][usecase] created")
	return created, nil
}

func (u *PolicyUseCase) Update(ctx context.Context, id int64, patch entities.PolicyPatch) (entities.Policy, error) {
	if id <= 0 {
		return entities.Policy{}, ErrInvalidID
	}

	// The owner is resolved before taking the store's write path; the store
	// re-checks it atomically.
	pre := validation.FieldErrors{}
	if patch.CustomerID != nil && *patch.CustomerID > 0 {
		c, err := u.customers.GetByID(ctx, *patch.CustomerID)
		if err != nil {
			return entities.Policy{}, err
		}
		if c.ID == 0 {
			pre.Add(validation.FieldCustomerID, validation.CodeNotFound)
		}
	}

	now := time.Now().UTC()
	var owner int64
	updated, err := u.repo.Update(ctx, id, func(cur entities.Policy) (entities.Policy, error) {
		in := patch.Apply(cur.Input())
		owner = in.CustomerID
		fe := validation.Policy(in)
		fe.Merge(pre)
		if !fe.Empty() {
			return cur, newValidationError(fe)
		}
		cur.Type = in.Type
		cur.CoverageAmount = in.CoverageAmount
		cur.CustomerID = in.CustomerID
		cur.UpdatedAt = now
		return cur, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrForeignKeyViolation):
			u.metrics.OperationRejected(entities.KindPolicy, "integrity")
			return entities.Policy{}, &IntegrityError{Field: validation.FieldCustomerID, Ref: owner}
		case errors.Is(err, ErrValidation):
			u.metrics.OperationRejected(entities.KindPolicy, "validation")
		}
		zerolog.Ctx(ctx).Debug().Err(err).Int64("policy_id", id).Msg("[policy][usecase] update rejected")
		return entities.Policy{}, err
	}
	if updated.ID == 0 {
		return entities.Policy{}, &NotFoundError{Kind: entities.KindPolicy, ID: id}
	}

	zerolog.Ctx(ctx).Info().Int64("policy_id", id).Msg("[policy][usecase] updated")
	return updated, nil
}

func (u *PolicyUseCase) GetByID(ctx context.Context, id int64) (entities.Policy, error) {
	if id <= 0 {
		return entities.Policy{}, ErrInvalidID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == 0 {
		return entities.Policy{}, &NotFoundError{Kind: entities.KindPolicy, ID: id}
	}
	return p, nil
}

func (u *PolicyUseCase) List(ctx context.Context) ([]entities.Policy, error) {
	return u.repo.List(ctx)
}

// ListWithCustomers joins every policy with its owner, preserving policy order.
func (u *PolicyUseCase) ListWithCustomers(ctx context.Context) ([]entities.PolicyWithCustomer, error) {
	policies, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]entities.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	out := make([]entities.PolicyWithCustomer, 0, len(policies))
	for _, p := range policies {
		out = append(out, entities.PolicyWithCustomer{Policy: p, Customer: byID[p.CustomerID]})
	}
	return out, nil
}

func (u *PolicyUseCase) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Policy, error) {
	if customerID <= 0 {
		return nil, ErrInvalidID
	}

	owner, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if owner.ID == 0 {
		return nil, &NotFoundError{Kind: entities.KindCustomer, ID: customerID}
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// validate runs the policy field rules plus owner resolution.
func (u *PolicyUseCase) validate(ctx context.Context, in entities.PolicyInput) (validation.FieldErrors, error) {
	fe := validation.Policy(in)
	if in.CustomerID > 0 {
		owner, err := u.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if owner.ID == 0 {
			fe.Add(validation.FieldCustomerID, validation.CodeNotFound)
		}
	}
	return fe, nil
}
