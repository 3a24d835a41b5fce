package usecase

import (
	"context"
	"errors"
	"testing"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase/interfaces"
	mock_interfaces "insurance_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPolicyUseCase_Create(t *testing.T) {
	t.Run("unknown owner is a field error", func(t *testing.T) {
		b := newBackOffice()
		_, err := b.policies.Create(context.Background(), entities.PolicyInput{
			Type:           entities.PolicyTypeHome,
			CoverageAmount: decimal.NewFromInt(1000),
			CustomerID:     99,
		})
		if fe := fieldsOf(t, err); fe[validation.FieldCustomerID] != validation.CodeNotFound {
			t.Fatalf("expected customerId not_found, got %v", fe)
		}
	})

	t.Run("field rules", func(t *testing.T) {
		b := newBackOffice()
		_, err := b.policies.Create(context.Background(), entities.PolicyInput{
			Type:           "boat",
			CoverageAmount: decimal.NewFromInt(-1),
		})
		fe := fieldsOf(t, err)
		if fe[validation.FieldType] != validation.CodeUnsupportedValue ||
			fe[validation.FieldCoverageAmount] != validation.CodeMustBeNonNegative ||
			fe[validation.FieldCustomerID] != validation.CodeRequired {
			t.Fatalf("unexpected fields: %v", fe)
		}
	})

	t.Run("zero coverage is accepted", func(t *testing.T) {
		b := newBackOffice()
		c := mustCustomer(t, b, "amal@example.com")
		p, err := b.policies.Create(context.Background(), entities.PolicyInput{
			Type:       entities.PolicyTypeLife,
			CustomerID: c.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.CoverageAmount.IsZero() {
			t.Fatalf("expected zero coverage, got %s", p.CoverageAmount)
		}
	})

	t.Run("owner vanished before write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
		uc := NewPolicyUseCase(repo, customers, metrics)

		customers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Customer{ID: 3}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Policy{}, interfaces.ErrForeignKeyViolation)
		metrics.EXPECT().OperationRejected(entities.KindPolicy, "integrity")

		_, err := uc.Create(context.Background(), entities.PolicyInput{
			Type:           entities.PolicyTypeAuto,
			CoverageAmount: decimal.NewFromInt(10),
			CustomerID:     3,
		})
		var ie *IntegrityError
		if !errors.As(err, &ie) || ie.Field != validation.FieldCustomerID || ie.Ref != 3 {
			t.Fatalf("expected IntegrityError on customerId, got %v", err)
		}
	})

	t.Run("owner lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewPolicyUseCase(mock_interfaces.NewMockIPolicyRepository(ctrl), customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Customer{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.PolicyInput{Type: entities.PolicyTypeAuto, CustomerID: 3})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPolicyUseCase_Update(t *testing.T) {
	t.Run("reassign to missing customer", func(t *testing.T) {
		b := newBackOffice()
		c := mustCustomer(t, b, "amal@example.com")
		p := mustPolicy(t, b, c.ID)

		missing := int64(50)
		_, err := b.policies.Update(context.Background(), p.ID, entities.PolicyPatch{CustomerID: &missing})
		if fe := fieldsOf(t, err); fe[validation.FieldCustomerID] != validation.CodeNotFound {
			t.Fatalf("expected customerId not_found, got %v", fe)
		}

		stored, _ := b.policies.GetByID(context.Background(), p.ID)
		if stored.CustomerID != c.ID {
			t.Fatalf("owner must be unchanged, got %d", stored.CustomerID)
		}
	})

	t.Run("reassign to other customer", func(t *testing.T) {
		b := newBackOffice()
		c := mustCustomer(t, b, "amal@example.com")
		other := mustCustomer(t, b, "samir@example.com")
		p := mustPolicy(t, b, c.ID)

		coverage := decimal.RequireFromString("25000.50")
		res, err := b.policies.Update(context.Background(), p.ID, entities.PolicyPatch{CustomerID: &other.ID, CoverageAmount: &coverage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerID != other.ID || !res.CoverageAmount.Equal(coverage) || res.Type != entities.PolicyTypeAuto {
			t.Fatalf("unexpected policy: %+v", res)
		}

		owned, err := b.policies.ListByCustomerID(context.Background(), c.ID)
		if err != nil || len(owned) != 0 {
			t.Fatalf("expected no policies left on first customer, got %v %v", owned, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		b := newBackOffice()
		typ := entities.PolicyTypeHome
		_, err := b.policies.Update(context.Background(), 9, entities.PolicyPatch{Type: &typ})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPolicyUseCase_ListWithCustomers(t *testing.T) {
	b := newBackOffice()
	amal := mustCustomer(t, b, "amal@example.com")
	samir := mustCustomer(t, b, "samir@example.com")
	mustPolicy(t, b, samir.ID)
	mustPolicy(t, b, amal.ID)

	rows, err := b.policies.ListWithCustomers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Policy.ID != 1 || rows[0].Customer.Email != "samir@example.com" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Policy.ID != 2 || rows[1].Customer.ID != amal.ID {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestPolicyUseCase_ListByCustomerID(t *testing.T) {
	b := newBackOffice()
	if _, err := b.policies.ListByCustomerID(context.Background(), 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := b.policies.ListByCustomerID(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
