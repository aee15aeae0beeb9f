package models

import (
	"gorm.io/gorm"
)

// Driver status values.
const (
	StatusAvailable = "available"
	StatusOnTrip    = "on_trip"
)

// Driver represents a hireable driver. A driver may be attached to at most
// one organisation; the association is optional and non-owning, so deleting
// a driver never touches the organisation row.
type Driver struct {
	gorm.Model
	Name          string  `json:"name" binding:"required"`
	PhoneNumber   string  `json:"phone_number" binding:"required"`
	LicenseNumber string  `json:"license_number" binding:"required"`
	VehicleType   string  `json:"vehicle_type"`
	Status        string  `json:"status" gorm:"default:available"` // "available" or "on_trip"
	Rating        float64 `json:"rating" gorm:"default:0"`         // aggregate of DriverReview ratings

	OrganisationID *uint         `json:"organisation_id" gorm:"index"`
	Organisation   *Organisation `gorm:"foreignKey:OrganisationID" json:"organisation,omitempty"`
}
