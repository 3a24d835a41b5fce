package usecase

import (
	"context"
	"errors"
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// IClaimUseCase exposes the claim lifecycle.
//
//   - Submit    => new claim, always PENDING
//   - Transition => status change through the lifecycle table
//   - Update    => edit mode: field patch plus optional status/settledAmount
type IClaimUseCase interface {
	Submit(ctx context.Context, in entities.ClaimInput) (entities.Claim, error)
	Transition(ctx context.Context, id int64, status entities.ClaimStatus, settledAmount *decimal.Decimal) (entities.Claim, error)
	Update(ctx context.Context, id int64, patch entities.ClaimPatch) (entities.Claim, error)
	GetByID(ctx context.Context, id int64) (entities.Claim, error)
	List(ctx context.Context) ([]entities.Claim, error)
	ListByPolicyID(ctx context.Context, policyID int64) ([]entities.Claim, error)
}

type ClaimUseCase struct {
	repo     interfaces.IClaimRepository
	policies interfaces.IPolicyRepository
	metrics  interfaces.IMetricsRecorder
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, policies interfaces.IPolicyRepository, metrics interfaces.IMetricsRecorder) *ClaimUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &ClaimUseCase{repo: repo, policies: policies, metrics: metrics}
}

func (u *ClaimUseCase) Submit(ctx context.Context, in entities.ClaimInput) (entities.Claim, error) {
	fe := validation.Claim(in)
	if err := u.resolvePolicy(ctx, in.PolicyID, fe); err != nil {
		return entities.Claim{}, err
	}
	if !fe.Empty() {
		zerolog.Ctx(ctx).Debug().Interface("fields", fe).Msg("[claim][usecase] submit rejected")
		u.metrics.OperationRejected(entities.KindClaim, "validation")
		return entities.Claim{}, newValidationError(fe)
	}

	c, err := entities.NewClaim(in)
	if err != nil {
		return entities.Claim{}, fieldError(validation.FieldDate, validation.CodeInvalidFormat)
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			u.metrics.OperationRejected(entities.KindClaim, "integrity")
			return entities.Claim{}, &IntegrityError{Field: validation.FieldPolicyID, Ref: in.PolicyID}
		}
		zerolog.Ctx(ctx).Error().Err(err).Msg("[claim][usecase] submit failed")
		return entities.Claim{}, err
	}

	u.metrics.EntityCreated(entities.KindClaim)
	zerolog.Ctx(ctx).Info().Int64("claim_id", created.ID).Int64("policy_id", created.PolicyID).Str("status", string(created.Status)).Msg("[claim][usecase] submitted")
	return created, nil
}

func (u *ClaimUseCase) Transition(ctx context.Context, id int64, status entities.ClaimStatus, settledAmount *decimal.Decimal) (entities.Claim, error) {
	return u.Update(ctx, id, entities.ClaimPatch{Status: &status, SettledAmount: settledAmount})
}

func (u *ClaimUseCase) Update(ctx context.Context, id int64, patch entities.ClaimPatch) (entities.Claim, error) {
	if id <= 0 {
		return entities.Claim{}, ErrInvalidID
	}

	pre := validation.FieldErrors{}
	if patch.PolicyID != nil {
		if err := u.resolvePolicy(ctx, *patch.PolicyID, pre); err != nil {
			return entities.Claim{}, err
		}
	}

	now := time.Now().UTC()
	var from entities.ClaimStatus
	var policyRef int64
	updated, err := u.repo.Update(ctx, id, func(cur entities.Claim) (entities.Claim, error) {
		from = cur.Status
		policyRef = cur.PolicyID
		if patch.PolicyID != nil {
			policyRef = *patch.PolicyID
		}
		return applyClaimPatch(cur, patch, pre, now)
	})
	if err != nil {
		u.rejected(err)
		if errors.Is(err, interfaces.ErrForeignKeyViolation) {
			return entities.Claim{}, &IntegrityError{Field: validation.FieldPolicyID, Ref: policyRef}
		}
		zerolog.Ctx(ctx).Debug().Err(err).Int64("claim_id", id).Msg("[claim][usecase] update rejected")
		return entities.Claim{}, err
	}
	if updated.ID == 0 {
		return entities.Claim{}, &NotFoundError{Kind: entities.KindClaim, ID: id}
	}

	if patch.HasLifecycleChange() {
		u.metrics.ClaimTransitioned(from, updated.Status)
		zerolog.Ctx(ctx).Info().Int64("claim_id", id).Str("from", string(from)).Str("to", string(updated.Status)).Msg("[claim][usecase] transitioned")
	} else {
		zerolog.Ctx(ctx).Info().Int64("claim_id", id).Msg("[claim][usecase] updated")
	}
	return updated, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	if id <= 0 {
		return entities.Claim{}, ErrInvalidID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == 0 {
		return entities.Claim{}, &NotFoundError{Kind: entities.KindClaim, ID: id}
	}
	return c, nil
}

func (u *ClaimUseCase) List(ctx context.Context) ([]entities.Claim, error) {
	return u.repo.List(ctx)
}

func (u *ClaimUseCase) ListByPolicyID(ctx context.Context, policyID int64) ([]entities.Claim, error) {
	if policyID <= 0 {
		return nil, ErrInvalidID
	}

	p, err := u.policies.GetByID(ctx, policyID)
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, &NotFoundError{Kind: entities.KindPolicy, ID: policyID}
	}
	return u.repo.ListByPolicyID(ctx, policyID)
}

// resolvePolicy adds a not_found entry to fe when policyID is set but absent.
func (u *ClaimUseCase) resolvePolicy(ctx context.Context, policyID int64, fe validation.FieldErrors) error {
	if policyID <= 0 {
		return nil
	}
	p, err := u.policies.GetByID(ctx, policyID)
	if err != nil {
		return err
	}
	if p.ID == 0 {
		fe.Add(validation.FieldPolicyID, validation.CodeNotFound)
	}
	return nil
}

func (u *ClaimUseCase) rejected(err error) {
	switch {
	case errors.Is(err, ErrValidation):
		u.metrics.OperationRejected(entities.KindClaim, "validation")
	case errors.Is(err, ErrInvalidTransition):
		u.metrics.OperationRejected(entities.KindClaim, "transition")
	case errors.Is(err, interfaces.ErrForeignKeyViolation):
		u.metrics.OperationRejected(entities.KindClaim, "integrity")
	}
}

// applyClaimPatch is the pure edit-mode step run inside the store's write
// path. The transition is checked before the fields so a terminal claim
// reports InvalidTransition rather than unrelated field errors.
func applyClaimPatch(cur entities.Claim, patch entities.ClaimPatch, pre validation.FieldErrors, now time.Time) (entities.Claim, error) {
	target := cur.Status
	if patch.Status != nil {
		target = *patch.Status
	}
	if patch.HasLifecycleChange() {
		if !target.Valid() {
			return cur, fieldError(validation.FieldStatus, validation.CodeUnsupportedValue)
		}
		if !cur.Status.CanTransitionTo(target) {
			return cur, &InvalidTransitionError{ClaimID: cur.ID, From: cur.Status, To: target}
		}
	}

	in := patch.Apply(cur.Input())
	fe := validation.Claim(in)
	fe.Merge(pre)
	if patch.HasLifecycleChange() {
		fe.Merge(validation.Settlement(target, patch.SettledAmount))
	}
	if !fe.Empty() {
		return cur, newValidationError(fe)
	}

	date, err := entities.ParseDate(in.Date)
	if err != nil {
		return cur, fieldError(validation.FieldDate, validation.CodeInvalidFormat)
	}
	next := cur
	next.Date = date
	next.Description = in.Description
	next.ClaimedAmount = in.ClaimedAmount
	next.PolicyID = in.PolicyID
	if patch.HasLifecycleChange() {
		next, err = entities.Transition(next, target, patch.SettledAmount)
		if err != nil {
			return cur, &InvalidTransitionError{ClaimID: cur.ID, From: cur.Status, To: target}
		}
	}
	next.UpdatedAt = now
	return next, nil
}
