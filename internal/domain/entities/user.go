package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole is the closed set of account roles. Behavior differences
// between roles live in the usecases, keyed on this type.
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleProvider UserRole = "provider"
	UserRoleAdmin    UserRole = "admin"
)

// Valid reports whether the role is one of the known variants.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleCustomer, UserRoleProvider, UserRoleAdmin:
		return true
	}
	return false
}

// User represents an account entity
type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	FullName     string       `json:"fullName"`
	Role         UserRole     `json:"role"`
	PhoneNumber  null.String  `json:"phoneNumber,omitempty"`
	Address      null.String  `json:"address,omitempty"`
	Latitude     null.Float64 `json:"latitude,omitempty"`
	Longitude    null.Float64 `json:"longitude,omitempty"`
	IsVerified   bool         `json:"isVerified"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	DeletedAt    null.Time    `json:"-"`
}

// HasLocation reports whether both coordinates are set.
func (u *User) HasLocation() bool {
	return u.Latitude.Valid && u.Longitude.Valid
}

// PaymentMethod is how a customer prefers to settle invoices
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCard   PaymentMethod = "card"
)

// Valid reports whether the method is a known variant.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodOnline, PaymentMethodCard:
		return true
	}
	return false
}

// CustomerProfile represents a customer's marketplace profile.
// Provisioned at registration time, never lazily on read.
type CustomerProfile struct {
	ID                     uuid.UUID     `json:"id"`
	UserID                 uuid.UUID     `json:"userId"`
	EmergencyContact       null.String   `json:"emergencyContact,omitempty"`
	PreferredPaymentMethod PaymentMethod `json:"preferredPaymentMethod"`
	CreatedAt              time.Time     `json:"createdAt"`
	UpdatedAt              time.Time     `json:"updatedAt"`

	User *User `json:"user,omitempty"`
}

// RegisterCustomerInput represents input for customer registration
type RegisterCustomerInput struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FullName    string  `json:"fullName" binding:"required,min=2,max=100"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Address     string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	UserID       uuid.UUID `json:"userId"`
	Role         UserRole  `json:"role"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
