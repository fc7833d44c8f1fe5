package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProviderID *uuid.UUID `gorm:"type:uuid;index"` // nullable until accepted
	ServiceID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID  uuid.UUID  `gorm:"type:uuid;not null"`

	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"type:varchar(10);not null;default:'medium'"`
	Status      string `gorm:"type:varchar(15);not null;default:'pending';index"`

	PickupLatitude  float64 `gorm:"type:decimal(9,6);not null"`
	PickupLongitude float64 `gorm:"type:decimal(9,6);not null"`
	PickupAddress   string  `gorm:"type:text;not null"`

	RequestedAt  time.Time `gorm:"not null"`
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ScheduledFor *time.Time

	EstimatedCost      *float64 `gorm:"type:decimal(10,2)"`
	FinalCost          *float64 `gorm:"type:decimal(10,2)"`
	CancellationReason *string  `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Service  Service                 `gorm:"foreignKey:ServiceID"`
	Vehicle  Vehicle                 `gorm:"foreignKey:VehicleID"`
	Customer CustomerProfile         `gorm:"foreignKey:CustomerID"`
	Provider *ServiceProviderProfile `gorm:"foreignKey:ProviderID"`
}

// ServiceRequestUpdate rows are append-only; there is no UpdatedAt and
// no delete path.
type ServiceRequestUpdate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(15);not null"`
	Message   string    `gorm:"type:text"`
	CreatedBy string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}
