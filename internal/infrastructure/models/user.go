package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	PhoneNumber  *string   `gorm:"type:varchar(20)"`
	Address      *string   `gorm:"type:text"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	IsVerified   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type CustomerProfile struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	EmergencyContact       *string   `gorm:"type:varchar(20)"`
	PreferredPaymentMethod string    `gorm:"type:varchar(10);not null;default:'cash'"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	User User `gorm:"foreignKey:UserID"`
}
