package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Review is 1:1 with a completed service request. The overall rating
// plus four aspect ratings feed the provider's denormalized aggregate.
type Review struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	ProviderID uuid.UUID `json:"providerId"`
	RequestID  uuid.UUID `json:"requestId"`

	Rating  int         `json:"rating"`
	Comment null.String `json:"comment,omitempty"`

	QualityRating         null.Int `json:"qualityRating,omitempty"`
	TimelinessRating      null.Int `json:"timelinessRating,omitempty"`
	ProfessionalismRating null.Int `json:"professionalismRating,omitempty"`
	ValueRating           null.Int `json:"valueRating,omitempty"`

	IsFeatured bool `json:"isFeatured"`
	IsApproved bool `json:"isApproved"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateReviewInput represents input for reviewing a completed request
type CreateReviewInput struct {
	RequestID             uuid.UUID `json:"requestId" binding:"required"`
	Rating                int       `json:"rating" binding:"required,min=1,max=5"`
	Comment               string    `json:"comment,omitempty"`
	QualityRating         *int      `json:"qualityRating,omitempty"`
	TimelinessRating      *int      `json:"timelinessRating,omitempty"`
	ProfessionalismRating *int      `json:"professionalismRating,omitempty"`
	ValueRating           *int      `json:"valueRating,omitempty"`
}
