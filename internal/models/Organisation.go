package models

import (
	"gorm.io/gorm"
)

// Organisation represents a company that hires drivers.
// Drivers reference an organisation; the organisation does not own them.
type Organisation struct {
	gorm.Model
	OrgName       string  `json:"org_name" gorm:"index" binding:"required"`
	ContactPerson string  `json:"contact_person" binding:"required"`
	ContactEmail  string  `json:"contact_email"`
	Address       string  `json:"address" binding:"required"`
	// No gorm default: a zero-valued field with a default tag is dropped
	// from the INSERT, which would turn an explicit false into true.
	// The create handler applies the default when the field is absent.
	IsActive      bool    `json:"is_active"`
	Rating        float64 `json:"rating" gorm:"default:0"` // aggregate of OrganisationReview ratings

	Drivers []Driver `gorm:"foreignKey:OrganisationID" json:"drivers,omitempty"`
}
