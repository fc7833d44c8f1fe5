package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	Rating  int     `gorm:"not null"`
	Comment *string `gorm:"type:text"`

	QualityRating         *int
	TimelinessRating      *int
	ProfessionalismRating *int
	ValueRating           *int

	IsFeatured bool `gorm:"not null;default:false"`
	IsApproved bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
