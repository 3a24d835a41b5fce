package usecase

import (
	"context"
	"errors"
	"testing"

	"insurance_backoffice/internal/adapter/persistence/memory"
	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"

	"github.com/shopspring/decimal"
)

type backOffice struct {
	customers *CustomerUseCase
	policies  *PolicyUseCase
	claims    *ClaimUseCase
	dashboard *DashboardUseCase
}

func newBackOffice() backOffice {
	db := memory.NewDB()
	customers := memory.NewCustomerRepository(db)
	policies := memory.NewPolicyRepository(db)
	claims := memory.NewClaimRepository(db)
	return backOffice{
		customers: NewCustomerUseCase(customers, nil),
		policies:  NewPolicyUseCase(policies, customers, nil),
		claims:    NewClaimUseCase(claims, policies, nil),
		dashboard: NewDashboardUseCase(customers, policies, claims),
	}
}

func customerInput(email string) entities.CustomerInput {
	return entities.CustomerInput{
		FirstName: "Amal",
		LastName:  "Haddad",
		Email:     email,
		Address:   "12 Rue Verte",
		Phone:     "+33 6 00 00 00 00",
	}
}

func mustCustomer(t *testing.T, b backOffice, email string) entities.Customer {
	t.Helper()
	c, err := b.customers.Create(context.Background(), customerInput(email))
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

func mustPolicy(t *testing.T, b backOffice, customerID int64) entities.Policy {
	t.Helper()
	p, err := b.policies.Create(context.Background(), entities.PolicyInput{
		Type:           entities.PolicyTypeAuto,
		CoverageAmount: decimal.NewFromInt(20000),
		CustomerID:     customerID,
	})
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}
	return p
}

func mustClaim(t *testing.T, b backOffice, policyID int64) entities.Claim {
	t.Helper()
	c, err := b.claims.Submit(context.Background(), entities.ClaimInput{
		Date:          "2024-01-05",
		Description:   "rear bumper",
		ClaimedAmount: decimal.NewFromInt(500),
		PolicyID:      policyID,
	})
	if err != nil {
		t.Fatalf("submit claim: %v", err)
	}
	return c
}

func fieldsOf(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve.Fields
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
