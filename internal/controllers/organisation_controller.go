package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	logrus "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"

	"driver_hire/internal/models"
)

// OrganisationController serves the /organisations resource.
type OrganisationController struct {
	DB *gorm.DB
}

func NewOrganisationController(db *gorm.DB) *OrganisationController {
	return &OrganisationController{DB: db}
}

type createOrganisationInput struct {
	OrgName       string `json:"org_name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email"`
	Address       string `json:"address" binding:"required"`
	IsActive      *bool  `json:"is_active"`
}

// A nil field means "do not change" that attribute.
type updateOrganisationInput struct {
	OrgName       *string `json:"org_name"`
	ContactPerson *string `json:"contact_person"`
	ContactEmail  *string `json:"contact_email" binding:"omitempty,email"`
	Address       *string `json:"address"`
	IsActive      *bool   `json:"is_active"`
}

// CreateOrganisation registers a new organisation.
func (oc *OrganisationController) CreateOrganisation(c *gin.Context) {
	var input createOrganisationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	org := models.Organisation{
		OrgName:       input.OrgName,
		ContactPerson: input.ContactPerson,
		ContactEmail:  input.ContactEmail,
		Address:       input.Address,
		IsActive:      active,
	}
	if err := oc.DB.Create(&org).Error; err != nil {
		logrus.WithError(err).Error("Error creating organisation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create organisation."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organisation": org})
}

// GetOrganisation retrieves an organisation by ID with its drivers.
func (oc *OrganisationController) GetOrganisation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format."})
		return
	}

	var org models.Organisation
	if err := oc.DB.Preload("Drivers").First(&org, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching organisation from database")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organisation."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organisation": org})
}

// ListOrganisations lists all organisations.
func (oc *OrganisationController) ListOrganisations(c *gin.Context) {
	organisations := []models.Organisation{}
	if err := oc.DB.Order("id").Find(&organisations).Error; err != nil {
		logrus.WithError(err).Error("Error listing organisations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch organisations."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": organisations})
}

// UpdateOrganisation modifies an existing organisation. Partial bodies are accepted.
func (oc *OrganisationController) UpdateOrganisation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format."})
		return
	}

	var org models.Organisation
	if err := oc.DB.First(&org, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching organisation for update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organisation."})
		return
	}

	var input updateOrganisationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.OrgName != nil {
		org.OrgName = *input.OrgName
	}
	if input.ContactPerson != nil {
		org.ContactPerson = *input.ContactPerson
	}
	if input.ContactEmail != nil {
		org.ContactEmail = *input.ContactEmail
	}
	if input.Address != nil {
		org.Address = *input.Address
	}
	if input.IsActive != nil {
		org.IsActive = *input.IsActive
	}

	if err := oc.DB.Save(&org).Error; err != nil {
		logrus.WithError(err).Error("Error saving organisation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organisation."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organisation": org})
}

// DeleteOrganisation removes an organisation by ID. Deletion is rejected
// while drivers still reference the organisation: the caller must reassign
// or delete those drivers first.
func (oc *OrganisationController) DeleteOrganisation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format."})
		return
	}

	var org models.Organisation
	if err := oc.DB.First(&org, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching organisation for delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organisation."})
		return
	}

	var attached int64
	if err := oc.DB.Model(&models.Driver{}).Where("organisation_id = ?", org.ID).Count(&attached).Error; err != nil {
		logrus.WithError(err).Error("Error counting attached drivers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organisation."})
		return
	}
	if attached > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Organisation still has drivers attached; reassign or delete them first."})
		return
	}

	// Hard delete, reviews included.
	tx := oc.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction."})
		return
	}
	if err := tx.Unscoped().Where("organisation_id = ?", org.ID).Delete(&models.OrganisationReview{}).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error deleting organisation reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organisation."})
		return
	}
	if err := tx.Unscoped().Delete(&org).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error deleting organisation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organisation."})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
