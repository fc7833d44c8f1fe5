package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	Icon        *string   `gorm:"type:varchar(50)"`
	IsActive    bool      `gorm:"not null;default:true"`
}

type Service struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProviderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Description       *string   `gorm:"type:text"`
	BasePrice         float64   `gorm:"type:decimal(10,2);not null"`
	EstimatedDuration int64     `gorm:"not null;default:0"` // nanoseconds
	IsAvailable       bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Provider ServiceProviderProfile `gorm:"foreignKey:ProviderID"`
	Category ServiceCategory        `gorm:"foreignKey:CategoryID"`
}
