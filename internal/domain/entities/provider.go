package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProviderType represents the kind of business a provider runs
type ProviderType string

const (
	ProviderTypeMechanic      ProviderType = "mechanic"
	ProviderTypeFuelStation   ProviderType = "fuel_station"
	ProviderTypeTowingService ProviderType = "towing_service"
	ProviderTypeCarWash       ProviderType = "car_wash"
	ProviderTypePartsDealer   ProviderType = "parts_dealer"
)

// Valid reports whether the provider type is a known variant.
func (t ProviderType) Valid() bool {
	switch t {
	case ProviderTypeMechanic, ProviderTypeFuelStation, ProviderTypeTowingService,
		ProviderTypeCarWash, ProviderTypePartsDealer:
		return true
	}
	return false
}

// MaxUnpaidDues is the dues count at which a provider loses eligibility.
const MaxUnpaidDues = 5

// ServiceProviderProfile represents a provider business entity,
// distinct from its owning user account. Never hard-deleted; providers
// are retired by clearing IsActive.
type ServiceProviderProfile struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"userId"`
	BusinessName      string       `json:"businessName"`
	BusinessLicense   string       `json:"businessLicense"`
	ProviderType      ProviderType `json:"providerType"`
	Description       null.String  `json:"description,omitempty"`
	OperatingHours    null.String  `json:"operatingHours,omitempty"`
	IsApproved        bool         `json:"isApproved"`
	IsActive          bool         `json:"isActive"`
	CommissionRate    float64      `json:"commissionRate"`
	UnpaidDuesCount   int          `json:"unpaidDuesCount"`
	TotalUnpaidAmount float64      `json:"totalUnpaidAmount"`
	Rating            float64      `json:"rating"`
	TotalReviews      int          `json:"totalReviews"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`

	User *User `json:"user,omitempty"`
}

// EligibleForRequests is the eligibility gate: an approved, active
// provider with fewer than MaxUnpaidDues overdue commissions may be
// discovered and may accept requests. Pure predicate, no side effects.
func (p *ServiceProviderProfile) EligibleForRequests() bool {
	return p.IsApproved && p.IsActive && p.UnpaidDuesCount < MaxUnpaidDues
}

// RegisterProviderInput represents input for provider registration
type RegisterProviderInput struct {
	Email           string       `json:"email" binding:"required,email"`
	Password        string       `json:"password" binding:"required,min=8"`
	FullName        string       `json:"fullName" binding:"required,min=2,max=100"`
	PhoneNumber     string       `json:"phoneNumber,omitempty"`
	Address         string       `json:"address,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	BusinessName    string       `json:"businessName" binding:"required,min=2,max=100"`
	BusinessLicense string       `json:"businessLicense" binding:"required"`
	ProviderType    ProviderType `json:"providerType" binding:"required"`
	Description     string       `json:"description,omitempty"`
}

// NearbyProvider is one discovery hit: a provider annotated with its
// distance from the query point and its currently available services.
type NearbyProvider struct {
	ProviderID   uuid.UUID    `json:"providerId"`
	BusinessName string       `json:"businessName"`
	ProviderType ProviderType `json:"providerType"`
	Rating       float64      `json:"rating"`
	DistanceKm   float64      `json:"distanceKm"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Services     []*Service   `json:"services"`
}
