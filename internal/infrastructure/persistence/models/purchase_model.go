package models

import (
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
)

// PurchaseLine is the stored form of a purchase line
type PurchaseLine struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
}

// PurchaseModel is the GORM database model for purchases. Lines are stored as JSON.
type PurchaseModel struct {
	ID            string         `gorm:"primaryKey;type:uuid"`
	ClientID      string         `gorm:"not null;index;type:uuid"`
	Lines         []PurchaseLine `gorm:"not null;serializer:json;type:text"`
	SubtotalCents int64          `gorm:"not null"`
	TaxCents      int64          `gorm:"not null"`
	ShippingCents int64          `gorm:"not null"`
	TotalCents    int64          `gorm:"not null"`
	Currency      string         `gorm:"not null;type:varchar(3)"`
	ChargeID      string         `gorm:"not null;type:varchar(100)"`
	Status        string         `gorm:"not null;type:varchar(20)"`
	CreatedAt     time.Time      `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts GORM model to domain entity
func (m *PurchaseModel) ToDomain() *store.Purchase {
	lines := make([]store.LineItem, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = store.LineItem(l)
	}
	return &store.Purchase{
		ID:            m.ID,
		ClientID:      m.ClientID,
		Lines:         lines,
		SubtotalCents: m.SubtotalCents,
		TaxCents:      m.TaxCents,
		ShippingCents: m.ShippingCents,
		TotalCents:    m.TotalCents,
		Currency:      m.Currency,
		ChargeID:      m.ChargeID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PurchaseModel) FromDomain(p *store.Purchase) {
	m.ID = p.ID
	m.ClientID = p.ClientID
	m.Lines = make([]PurchaseLine, len(p.Lines))
	for i, l := range p.Lines {
		m.Lines[i] = PurchaseLine(l)
	}
	m.SubtotalCents = p.SubtotalCents
	m.TaxCents = p.TaxCents
	m.ShippingCents = p.ShippingCents
	m.TotalCents = p.TotalCents
	m.Currency = p.Currency
	m.ChargeID = p.ChargeID
	m.Status = p.Status
	m.CreatedAt = p.CreatedAt
}
