package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VehicleType represents vehicle categories
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeBus        VehicleType = "bus"
	VehicleTypeOther      VehicleType = "other"
)

// Vehicle is owned by exactly one customer. License plates are unique
// across the whole system.
type Vehicle struct {
	ID           uuid.UUID   `json:"id"`
	CustomerID   uuid.UUID   `json:"customerId"`
	Make         string      `json:"make"`
	Model        string      `json:"model"`
	Year         int         `json:"year"`
	VehicleType  VehicleType `json:"vehicleType"`
	LicensePlate string      `json:"licensePlate"`
	Color        null.String `json:"color,omitempty"`
	IsPrimary    bool        `json:"isPrimary"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// AddVehicleInput represents input for registering a vehicle
type AddVehicleInput struct {
	Make         string      `json:"make" binding:"required"`
	Model        string      `json:"model" binding:"required"`
	Year         int         `json:"year" binding:"required,min=1900"`
	VehicleType  VehicleType `json:"vehicleType" binding:"required"`
	LicensePlate string      `json:"licensePlate" binding:"required"`
	Color        string      `json:"color,omitempty"`
	IsPrimary    bool        `json:"isPrimary"`
}
