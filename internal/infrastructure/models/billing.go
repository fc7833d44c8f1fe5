package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RequestID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	InvoiceNumber  string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Subtotal       float64   `gorm:"type:decimal(10,2);not null"`
	TaxAmount      float64   `gorm:"type:decimal(10,2);not null;default:0.00"`
	DiscountAmount float64   `gorm:"type:decimal(10,2);not null;default:0.00"`
	TotalAmount    float64   `gorm:"type:decimal(10,2);not null"`
	Status         string    `gorm:"type:varchar(15);not null;default:'pending'"`
	PaymentMethod  *string   `gorm:"type:varchar(10)"`
	PaidAmount     float64   `gorm:"type:decimal(10,2);not null;default:0.00"`
	IssuedAt       time.Time `gorm:"not null;index"`
	DueDate        time.Time `gorm:"not null"`
	PaidAt         *time.Time
	Notes          *string `gorm:"type:text"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

type InvoiceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(200);not null"`
	Quantity    float64   `gorm:"type:decimal(8,2);not null;default:1.00"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null"`
}

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Method        string    `gorm:"type:varchar(10);not null"`
	Status        string    `gorm:"type:varchar(10);not null;default:'pending'"`
	TransactionID *string   `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	ProcessedAt   *time.Time

	Invoice Invoice `gorm:"foreignKey:InvoiceID"`
}

type Commission struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Rate          float64   `gorm:"type:decimal(5,2);not null"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Status        string    `gorm:"type:varchar(10);not null;default:'pending';index"`
	IsCashPayment bool      `gorm:"not null;default:false"`
	DueDate       time.Time `gorm:"not null;index"`
	PaidAt        *time.Time
	CreatedAt     time.Time

	Provider ServiceProviderProfile `gorm:"foreignKey:ProviderID"`
	Payment  Payment                `gorm:"foreignKey:PaymentID"`
}
