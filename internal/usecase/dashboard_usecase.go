package usecase

import (
	"context"
	"slices"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// DefaultRecentLimit is the number of recent items shown per kind on the dashboard.
const DefaultRecentLimit = 5

// Counts is the cardinality of each entity list.
type Counts struct {
	Customers int
	Policies  int
	Claims    int
}

// DashboardSummary aggregates counts and the most recently created records.
type DashboardSummary struct {
	Counts          Counts
	RecentCustomers []entities.Customer
	RecentPolicies  []entities.Policy
	RecentClaims    []entities.Claim
}

// RecentItems holds the result of a single-kind recent query; only the
// slice matching Kind is populated.
type RecentItems struct {
	Kind      entities.Kind
	Customers []entities.Customer
	Policies  []entities.Policy
	Claims    []entities.Claim
}

// IDashboardUseCase exposes read-only projections over the store. Nothing is
// cached: each call reads current store contents.
type IDashboardUseCase interface {
	Counts(ctx context.Context) (Counts, error)
	Recent(ctx context.Context, kind entities.Kind, n int) (RecentItems, error)
	Summary(ctx context.Context, n int) (DashboardSummary, error)
}

type DashboardUseCase struct {
	customers interfaces.ICustomerRepository
	policies  interfaces.IPolicyRepository
	claims    interfaces.IClaimRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customers interfaces.ICustomerRepository, policies interfaces.IPolicyRepository, claims interfaces.IClaimRepository) *DashboardUseCase {
	return &DashboardUseCase{customers: customers, policies: policies, claims: claims}
}

func (u *DashboardUseCase) Counts(ctx context.Context) (Counts, error) {
	var out Counts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Customers, err = u.customers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Policies, err = u.policies.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Claims, err = u.claims.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return out, nil
}

func (u *DashboardUseCase) Recent(ctx context.Context, kind entities.Kind, n int) (RecentItems, error) {
	out := RecentItems{Kind: kind}
	switch kind {
	case entities.KindCustomer:
		items, err := u.customers.List(ctx)
		if err != nil {
			return RecentItems{}, err
		}
		out.Customers = mostRecent(items, func(c entities.Customer) int64 { return c.ID }, n)
	case entities.KindPolicy:
		items, err := u.policies.List(ctx)
		if err != nil {
			return RecentItems{}, err
		}
		out.Policies = mostRecent(items, func(p entities.Policy) int64 { return p.ID }, n)
	case entities.KindClaim:
		items, err := u.claims.List(ctx)
		if err != nil {
			return RecentItems{}, err
		}
		out.Claims = mostRecent(items, func(c entities.Claim) int64 { return c.ID }, n)
	default:
		return RecentItems{}, ErrUnknownKind
	}
	return out, nil
}

// Summary reads the three lists concurrently. Counts are taken from the same
// lists, so a summary never shows a count that disagrees with its recents.
func (u *DashboardUseCase) Summary(ctx context.Context, n int) (DashboardSummary, error) {
	var (
		customers []entities.Customer
		policies  []entities.Policy
		claims    []entities.Claim
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = u.customers.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		policies, err = u.policies.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		claims, err = u.claims.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Counts: Counts{
			Customers: len(customers),
			Policies:  len(policies),
			Claims:    len(claims),
		},
		RecentCustomers: mostRecent(customers, func(c entities.Customer) int64 { return c.ID }, n),
		RecentPolicies:  mostRecent(policies, func(p entities.Policy) int64 { return p.ID }, n),
		RecentClaims:    mostRecent(claims, func(c entities.Claim) int64 { return c.ID }, n),
	}, nil
}

// mostRecent returns up to n items by creation order descending. Ids are
// assigned sequentially per kind, so the id is the creation ordinal.
func mostRecent[T any](items []T, id func(T) int64, n int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ia, ib := id(a), id(b)
		switch {
		case ia > ib:
			return -1
		case ia < ib:
			return 1
		}
		return 0
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
