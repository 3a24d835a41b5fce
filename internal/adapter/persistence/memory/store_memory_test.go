package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	ctx       context.Context
	customers *CustomerRepository
	policies  *PolicyRepository
	claims    *ClaimRepository
}

func (s *StoreSuite) SetupTest() {
	db := NewDB()
	s.ctx = context.Background()
	s.customers = NewCustomerRepository(db)
	s.policies = NewPolicyRepository(db)
	s.claims = NewClaimRepository(db)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) newCustomer(email string) entities.Customer {
	c, err := s.customers.Create(s.ctx, entities.Customer{
		FirstName: "Amal",
		LastName:  "B",
		Email:     email,
		Address:   "x",
		Phone:     "1",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	return c
}

func (s *StoreSuite) newPolicy(customerID int64) entities.Policy {
	p, err := s.policies.Create(s.ctx, entities.Policy{
		Type:           entities.PolicyTypeAuto,
		CoverageAmount: decimal.NewFromInt(10000),
		CustomerID:     customerID,
	})
	s.Require().NoError(err)
	return p
}

func (s *StoreSuite) newClaim(policyID int64) entities.Claim {
	c, err := s.claims.Create(s.ctx, entities.Claim{
		Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description:   "fender",
		ClaimedAmount: decimal.NewFromInt(500),
		Status:        entities.ClaimStatusPending,
		PolicyID:      policyID,
	})
	s.Require().NoError(err)
	return c
}

func (s *StoreSuite) TestSequentialIDsAndInsertionOrder() {
	s.Run("ids start at one per kind", func() {
		a := s.newCustomer("a@b.com")
		b := s.newCustomer("c@d.com")
		s.Equal(int64(1), a.ID)
		s.Equal(int64(2), b.ID)

		p := s.newPolicy(a.ID)
		s.Equal(int64(1), p.ID)
	})

	s.Run("list keeps insertion order", func() {
		list, err := s.customers.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 2)
		s.Equal("a@b.com", list[0].Email)
		s.Equal("c@d.com", list[1].Email)

		n, err := s.customers.Count(s.ctx)
		s.Require().NoError(err)
		s.Equal(2, n)
	})
}

func (s *StoreSuite) TestMissingRecordsAreZeroValues() {
	c, err := s.customers.GetByID(s.ctx, 42)
	s.Require().NoError(err)
	s.Zero(c.ID)

	called := false
	p, err := s.policies.Update(s.ctx, 7, func(cur entities.Policy) (entities.Policy, error) {
		called = true
		return cur, nil
	})
	s.Require().NoError(err)
	s.Zero(p.ID)
	s.False(called, "mutate must not run for a missing record")
}

func (s *StoreSuite) TestForeignKeys() {
	s.Run("policy with unknown customer is rejected and not stored", func() {
		_, err := s.policies.Create(s.ctx, entities.Policy{Type: entities.PolicyTypeAuto, CustomerID: 99})
		s.Require().ErrorIs(err, interfaces.ErrForeignKeyViolation)

		n, err := s.policies.Count(s.ctx)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("claim with unknown policy is rejected", func() {
		_, err := s.claims.Create(s.ctx, entities.Claim{PolicyID: 3})
		s.Require().ErrorIs(err, interfaces.ErrForeignKeyViolation)
	})

	s.Run("update pointing at a missing parent leaves the record untouched", func() {
		owner := s.newCustomer("fk@b.com")
		p := s.newPolicy(owner.ID)
		c := s.newClaim(p.ID)

		_, err := s.claims.Update(s.ctx, c.ID, func(cur entities.Claim) (entities.Claim, error) {
			cur.PolicyID = 500
			cur.Description = "changed"
			return cur, nil
		})
		s.Require().ErrorIs(err, interfaces.ErrForeignKeyViolation)

		stored, err := s.claims.GetByID(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal("fender", stored.Description)
		s.Equal(p.ID, stored.PolicyID)
	})
}

func (s *StoreSuite) TestRejectedMutationIsAtomic() {
	owner := s.newCustomer("atomic@b.com")
	boom := errors.New("boom")

	_, err := s.customers.Update(s.ctx, owner.ID, func(cur entities.Customer) (entities.Customer, error) {
		cur.FirstName = "half-written"
		return cur, boom
	})
	s.Require().ErrorIs(err, boom)

	stored, err := s.customers.GetByID(s.ctx, owner.ID)
	s.Require().NoError(err)
	s.Equal("Amal", stored.FirstName)
}

func (s *StoreSuite) TestEmailUniqueness() {
	first := s.newCustomer("Dup@Example.com")
	other := s.newCustomer("other@example.com")

	s.Run("create collides case-insensitively", func() {
		_, err := s.customers.Create(s.ctx, entities.Customer{Email: " dup@example.com "})
		s.Require().ErrorIs(err, interfaces.ErrEmailTaken)
	})

	s.Run("update onto a taken email is rejected", func() {
		_, err := s.customers.Update(s.ctx, other.ID, func(cur entities.Customer) (entities.Customer, error) {
			cur.Email = "dup@example.com"
			return cur, nil
		})
		s.Require().ErrorIs(err, interfaces.ErrEmailTaken)
	})

	s.Run("changing an email frees the old one", func() {
		_, err := s.customers.Update(s.ctx, first.ID, func(cur entities.Customer) (entities.Customer, error) {
			cur.Email = "renamed@example.com"
			return cur, nil
		})
		s.Require().NoError(err)

		_, err = s.customers.Create(s.ctx, entities.Customer{Email: "dup@example.com"})
		s.Require().NoError(err)
	})
}

func (s *StoreSuite) TestClaimCopiesDoNotAlias() {
	owner := s.newCustomer("alias@b.com")
	p := s.newPolicy(owner.ID)
	c := s.newClaim(p.ID)

	amount := decimal.NewFromInt(450)
	_, err := s.claims.Update(s.ctx, c.ID, func(cur entities.Claim) (entities.Claim, error) {
		cur.Status = entities.ClaimStatusSettled
		cur.SettledAmount = &amount
		return cur, nil
	})
	s.Require().NoError(err)

	amount = decimal.NewFromInt(1)
	stored, err := s.claims.GetByID(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.SettledAmount)
	s.True(stored.SettledAmount.Equal(decimal.NewFromInt(450)))
}

func (s *StoreSuite) TestListByParent() {
	a := s.newCustomer("p1@b.com")
	b := s.newCustomer("p2@b.com")
	pa := s.newPolicy(a.ID)
	s.newPolicy(b.ID)
	pa2 := s.newPolicy(a.ID)
	s.newClaim(pa.ID)
	s.newClaim(pa2.ID)
	s.newClaim(pa.ID)

	policies, err := s.policies.ListByCustomerID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(policies, 2)
	s.Equal(pa.ID, policies[0].ID)
	s.Equal(pa2.ID, policies[1].ID)

	claims, err := s.claims.ListByPolicyID(s.ctx, pa.ID)
	s.Require().NoError(err)
	s.Len(claims, 2)

	none, err := s.claims.ListByPolicyID(s.ctx, 404)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreSuite) TestConcurrentWritersAreSerialized() {
	owner := s.newCustomer("race@b.com")
	p := s.newPolicy(owner.ID)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.claims.Create(s.ctx, entities.Claim{PolicyID: p.ID, Status: entities.ClaimStatusPending})
			s.NoError(err)
		}()
	}
	wg.Wait()

	list, err := s.claims.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 50)
	for i, c := range list {
		s.Equal(int64(i+1), c.ID)
	}
}
