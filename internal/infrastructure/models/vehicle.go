package models

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Make         string    `gorm:"type:varchar(50);not null"`
	Model        string    `gorm:"type:varchar(50);not null"`
	Year         int       `gorm:"not null"`
	VehicleType  string    `gorm:"type:varchar(20);not null"`
	LicensePlate string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Color        *string   `gorm:"type:varchar(30)"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer CustomerProfile `gorm:"foreignKey:CustomerID"`
}
