package controllers

import (
	"errors" // Import errors for gorm.ErrRecordNotFound
	"net/http"
	"strconv" // For parsing IDs

	"gorm.io/gorm"

	logrus "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"

	"driver_hire/internal/models"
)

// DriverController serves the /drivers resource. The store handle is
// injected at assembly time; handlers never reach for ambient state.
type DriverController struct {
	DB *gorm.DB
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{DB: db}
}

// --- Helper Structs for Request Bodies ---

// createDriverInput defines the JSON accepted when registering a driver.
type createDriverInput struct {
	Name           string `json:"name" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	LicenseNumber  string `json:"license_number" binding:"required"`
	VehicleType    string `json:"vehicle_type"`
	Status         string `json:"status" binding:"omitempty,oneof=available on_trip"`
	OrganisationID *uint  `json:"organisation_id"`
}

// updateDriverInput defines the fields a client can change on a driver.
// A nil field means "do not change" that attribute. An organisation_id of 0
// detaches the driver from its organisation.
type updateDriverInput struct {
	Name           *string `json:"name"`
	PhoneNumber    *string `json:"phone_number"`
	LicenseNumber  *string `json:"license_number"`
	VehicleType    *string `json:"vehicle_type"`
	Status         *string `json:"status" binding:"omitempty,oneof=available on_trip"`
	OrganisationID *uint   `json:"organisation_id"`
}

// organisationExists checks that a referenced organisation row is present.
func (dc *DriverController) organisationExists(id uint) (bool, error) {
	var org models.Organisation
	if err := dc.DB.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateDriver registers a new driver. The organisation reference, when
// supplied, must resolve to an existing organisation.
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.OrganisationID != nil {
		ok, err := dc.organisationExists(*input.OrganisationID)
		if err != nil {
			logrus.WithError(err).Error("Error resolving organisation reference")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error resolving organisation."})
			return
		}
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Organisation referenced by organisation_id does not exist."})
			return
		}
	}

	status := input.Status
	if status == "" {
		status = models.StatusAvailable
	}

	driver := models.Driver{
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
		LicenseNumber:  input.LicenseNumber,
		VehicleType:    input.VehicleType,
		Status:         status,
		OrganisationID: input.OrganisationID,
	}
	if err := dc.DB.Create(&driver).Error; err != nil {
		logrus.WithError(err).Error("Error creating driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create driver."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// GetDriver fetches a single driver by ID.
func (dc *DriverController) GetDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := dc.DB.Preload("Organisation").First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching driver from database")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// ListDrivers fetches all drivers. Optional query params narrow the result:
// ?status=available and ?organisation_id=N.
func (dc *DriverController) ListDrivers(c *gin.Context) {
	q := dc.DB.Model(&models.Driver{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if orgParam := c.Query("organisation_id"); orgParam != "" {
		orgID, err := strconv.ParseUint(orgParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation_id query parameter."})
			return
		}
		q = q.Where("organisation_id = ?", uint(orgID))
	}

	drivers := []models.Driver{}
	if err := q.Order("id").Find(&drivers).Error; err != nil {
		logrus.WithError(err).Error("Error listing drivers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch drivers."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

// UpdateDriver modifies an existing driver. Partial bodies are accepted.
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := dc.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching driver for update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver."})
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		driver.PhoneNumber = *input.PhoneNumber
	}
	if input.LicenseNumber != nil {
		driver.LicenseNumber = *input.LicenseNumber
	}
	if input.VehicleType != nil {
		driver.VehicleType = *input.VehicleType
	}
	if input.Status != nil {
		driver.Status = *input.Status
	}
	if input.OrganisationID != nil {
		if *input.OrganisationID == 0 {
			driver.OrganisationID = nil
		} else {
			ok, err := dc.organisationExists(*input.OrganisationID)
			if err != nil {
				logrus.WithError(err).Error("Error resolving organisation reference")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error resolving organisation."})
				return
			}
			if !ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Organisation referenced by organisation_id does not exist."})
				return
			}
			driver.OrganisationID = input.OrganisationID
		}
	}

	if err := dc.DB.Save(&driver).Error; err != nil {
		logrus.WithError(err).Error("Error saving driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DeleteDriver removes a driver by ID.
func (dc *DriverController) DeleteDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := dc.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching driver for delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver."})
		return
	}

	// Hard delete: rows are not retained, and the driver's reviews go with it.
	tx := dc.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction."})
		return
	}
	if err := tx.Unscoped().Where("driver_id = ?", driver.ID).Delete(&models.DriverReview{}).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error deleting driver reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver."})
		return
	}
	if err := tx.Unscoped().Delete(&driver).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error deleting driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver."})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
