package models

import (
	"gorm.io/gorm"
)

// DriverReview is a single rating left for a driver. Creating one
// recomputes the driver's aggregate Rating.
type DriverReview struct {
	gorm.Model
	DriverID uint   `json:"driver_id" gorm:"index"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"` // 1..5
	Comment  string `json:"comment"`
}

// OrganisationReview is a single rating left for an organisation.
type OrganisationReview struct {
	gorm.Model
	OrganisationID uint   `json:"organisation_id" gorm:"index"`
	Reviewer       string `json:"reviewer"`
	Rating         int    `json:"rating"` // 1..5
	Comment        string `json:"comment"`
}
