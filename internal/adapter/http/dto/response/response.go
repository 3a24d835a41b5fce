package response

import (
	"encoding/json"
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase"

	"github.com/shopspring/decimal"
)

type CustomerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PolicyResponse struct {
	ID             int64       `json:"id"`
	Type           string      `json:"type"`
	CoverageAmount json.Number `json:"coverageAmount" swaggertype:"number"`
	CustomerID     int64       `json:"customerId"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// PolicyWithCustomerResponse is a policy with its owner inlined.
type PolicyWithCustomerResponse struct {
	PolicyResponse
	Customer CustomerResponse `json:"customer"`
}

type ClaimResponse struct {
	ID            int64        `json:"id"`
	Date          string       `json:"date" example:"2024-01-05"`
	Description   string       `json:"description"`
	ClaimedAmount json.Number  `json:"claimedAmount" swaggertype:"number"`
	Status        string       `json:"status"`
	SettledAmount *json.Number `json:"settledAmount,omitempty" swaggertype:"number"`
	PolicyID      int64        `json:"policyId"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type CountsResponse struct {
	CustomerCount int `json:"customerCount"`
	PolicyCount   int `json:"policyCount"`
	ClaimCount    int `json:"claimCount"`
}

type DashboardResponse struct {
	Counts          CountsResponse     `json:"counts"`
	RecentCustomers []CustomerResponse `json:"recentCustomers"`
	RecentPolicies  []PolicyResponse   `json:"recentPolicies"`
	RecentClaims    []ClaimResponse    `json:"recentClaims"`
}

type RecentResponse struct {
	Kind  string `json:"kind"`
	Items any    `json:"items"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		ID:             p.ID,
		Type:           string(p.Type),
		CoverageAmount: number(p.CoverageAmount),
		CustomerID:     p.CustomerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPolicies(ps []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPolicy(p))
	}
	return out
}

func FromPoliciesWithCustomer(ps []entities.PolicyWithCustomer) []PolicyWithCustomerResponse {
	out := make([]PolicyWithCustomerResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PolicyWithCustomerResponse{
			PolicyResponse: FromPolicy(p.Policy),
			Customer:       FromCustomer(p.Customer),
		})
	}
	return out
}

func FromClaim(c entities.Claim) ClaimResponse {
	res := ClaimResponse{
		ID:            c.ID,
		Date:          c.Date.Format(entities.DateLayout),
		Description:   c.Description,
		ClaimedAmount: number(c.ClaimedAmount),
		Status:        string(c.Status),
		PolicyID:      c.PolicyID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.SettledAmount != nil {
		n := number(*c.SettledAmount)
		res.SettledAmount = &n
	}
	return res
}

func FromClaims(cs []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClaim(c))
	}
	return out
}

func FromCounts(c usecase.Counts) CountsResponse {
	return CountsResponse{CustomerCount: c.Customers, PolicyCount: c.Policies, ClaimCount: c.Claims}
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Counts:          FromCounts(s.Counts),
		RecentCustomers: FromCustomers(s.RecentCustomers),
		RecentPolicies:  FromPolicies(s.RecentPolicies),
		RecentClaims:    FromClaims(s.RecentClaims),
	}
}

func FromRecent(r usecase.RecentItems) RecentResponse {
	res := RecentResponse{Kind: string(r.Kind)}
	switch r.Kind {
	case entities.KindCustomer:
		res.Items = FromCustomers(r.Customers)
	case entities.KindPolicy:
		res.Items = FromPolicies(r.Policies)
	case entities.KindClaim:
		res.Items = FromClaims(r.Claims)
	}
	return res
}

// number renders d as a JSON number without going through float64.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
