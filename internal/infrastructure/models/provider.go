package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceProviderProfile struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName      string    `gorm:"type:varchar(100);not null"`
	BusinessLicense   string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	ProviderType      string    `gorm:"type:varchar(20);not null;index"`
	Description       *string   `gorm:"type:text"`
	OperatingHours    *string   `gorm:"type:varchar(100)"`
	IsApproved        bool      `gorm:"not null;default:false"`
	IsActive          bool      `gorm:"not null;default:true"`
	CommissionRate    float64   `gorm:"type:decimal(5,2);not null;default:10.00"`
	UnpaidDuesCount   int       `gorm:"not null;default:0"`
	TotalUnpaidAmount float64   `gorm:"type:decimal(10,2);not null;default:0.00"`
	Rating            float64   `gorm:"type:decimal(3,2);not null;default:0.00"`
	TotalReviews      int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User User `gorm:"foreignKey:UserID"`
}

func (ServiceProviderProfile) TableName() string {
	return "service_provider_profiles"
}
