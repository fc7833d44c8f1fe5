package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ServiceCategory groups services for browsing
type ServiceCategory struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description,omitempty"`
	Icon        null.String `json:"icon,omitempty"`
	IsActive    bool        `json:"isActive"`
}

// Service is offered by exactly one provider and belongs to one
// category. Its base price seeds a request's estimated cost.
type Service struct {
	ID                uuid.UUID     `json:"id"`
	ProviderID        uuid.UUID     `json:"providerId"`
	CategoryID        uuid.UUID     `json:"categoryId"`
	Name              string        `json:"name"`
	Description       null.String   `json:"description,omitempty"`
	BasePrice         float64       `json:"basePrice"`
	EstimatedDuration time.Duration `json:"estimatedDuration"`
	IsAvailable       bool          `json:"isAvailable"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`

	Provider *ServiceProviderProfile `json:"provider,omitempty"`
	Category *ServiceCategory        `json:"category,omitempty"`
}

// CreateServiceInput represents input for a provider adding a service
type CreateServiceInput struct {
	CategoryID        uuid.UUID `json:"categoryId" binding:"required"`
	Name              string    `json:"name" binding:"required,min=2,max=100"`
	Description       string    `json:"description,omitempty"`
	BasePrice         float64   `json:"basePrice" binding:"required,gt=0"`
	EstimatedDuration string    `json:"estimatedDuration,omitempty"`
}

// UpdateServiceInput represents input for editing a service
type UpdateServiceInput struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	BasePrice   *float64 `json:"basePrice,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// ServiceFilter narrows a catalog listing
type ServiceFilter struct {
	Search     string
	CategoryID *uuid.UUID
}
