package postgres

import (
	"time"

	"insurance_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type customerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"size:120;not null"`
	LastName  string `gorm:"size:120;not null"`
	Email     string `gorm:"size:254;not null"`
	Address   string `gorm:"size:255"`
	Phone     string `gorm:"size:60"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerModel) TableName() string { return "customers" }

type policyModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Type           string          `gorm:"size:20;not null"`
	CoverageAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CustomerID     int64           `gorm:"not null;index"`
	Customer       customerModel   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (policyModel) TableName() string { return "policies" }

type claimModel struct {
	ID            int64               `gorm:"primaryKey;autoIncrement"`
	Date          time.Time           `gorm:"type:date;not null"`
	Description   string              `gorm:"type:text;not null"`
	ClaimedAmount decimal.Decimal     `gorm:"type:decimal(14,2);not null"`
	Status        string              `gorm:"size:10;not null;index"`
	SettledAmount decimal.NullDecimal `gorm:"type:decimal(14,2)"`
	PolicyID      int64               `gorm:"not null;index"`
	Policy        policyModel         `gorm:"foreignKey:PolicyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (claimModel) TableName() string { return "claims" }

func toCustomerModel(c entities.Customer) customerModel {
	return customerModel{
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

func (m customerModel) entity() entities.Customer {
	return entities.Customer{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Address:   m.Address,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toPolicyModel(p entities.Policy) policyModel {
	return policyModel{
		ID:             p.ID,
		Type:           string(p.Type),
		CoverageAmount: p.CoverageAmount,
		CustomerID:     p.CustomerID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m policyModel) entity() entities.Policy {
	return entities.Policy{
		ID:             m.ID,
		Type:           entities.PolicyType(m.Type),
		CoverageAmount: m.CoverageAmount,
		CustomerID:     m.CustomerID,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

func toClaimModel(c entities.Claim) claimModel {
	m := claimModel{
		ID:            c.ID,
		Date:          c.Date,
		Description:   c.Description,
		ClaimedAmount: c.ClaimedAmount,
		Status:        string(c.Status),
		PolicyID:      c.PolicyID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.SettledAmount != nil {
		m.SettledAmount = decimal.NewNullDecimal(*c.SettledAmount)
	}
	return m
}

func (m claimModel) entity() entities.Claim {
	y, mo, d := m.Date.Date()
	c := entities.Claim{
		ID:            m.ID,
		Date:          time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		Description:   m.Description,
		ClaimedAmount: m.ClaimedAmount,
		Status:        entities.ClaimStatus(m.Status),
		PolicyID:      m.PolicyID,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
	if m.SettledAmount.Valid {
		s := m.SettledAmount.Decimal
		c.SettledAmount = &s
	}
	return c
}
