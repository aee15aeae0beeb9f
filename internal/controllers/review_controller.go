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

// ReviewController serves reviews nested under drivers and organisations.
// Creating a review recomputes the parent's aggregate rating in the same
// transaction.
type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

type createReviewInput struct {
	Reviewer string `json:"reviewer" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// CreateDriverReview adds a review for a driver and refreshes its rating.
func (rc *ReviewController) CreateDriverReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := rc.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching driver for review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver."})
		return
	}

	var input createReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	review := models.DriverReview{
		DriverID: driver.ID,
		Reviewer: input.Reviewer,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}

	tx := rc.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction."})
		return
	}

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error creating driver review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create review."})
		return
	}

	var avg float64
	if err := tx.Model(&models.DriverReview{}).
		Where("driver_id = ?", driver.ID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error computing driver rating")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update driver rating."})
		return
	}

	driver.Rating = avg
	if err := tx.Save(&driver).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error saving driver rating")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update driver rating."})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review, "rating": driver.Rating})
}

// ListDriverReviews fetches all reviews for a driver.
func (rc *ReviewController) ListDriverReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := rc.DB.First(&driver, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching driver for reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch driver."})
		return
	}

	reviews := []models.DriverReview{}
	if err := rc.DB.Where("driver_id = ?", driver.ID).Order("id").Find(&reviews).Error; err != nil {
		logrus.WithError(err).Error("Error listing driver reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

// CreateOrganisationReview adds a review for an organisation and refreshes
// its rating.
func (rc *ReviewController) CreateOrganisationReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format."})
		return
	}

	var org models.Organisation
	if err := rc.DB.First(&org, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching organisation for review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organisation."})
		return
	}

	var input createReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	review := models.OrganisationReview{
		OrganisationID: org.ID,
		Reviewer:       input.Reviewer,
		Rating:         input.Rating,
		Comment:        input.Comment,
	}

	tx := rc.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start transaction."})
		return
	}

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error creating organisation review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create review."})
		return
	}

	var avg float64
	if err := tx.Model(&models.OrganisationReview{}).
		Where("organisation_id = ?", org.ID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error computing organisation rating")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update organisation rating."})
		return
	}

	org.Rating = avg
	if err := tx.Save(&org).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("Error saving organisation rating")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update organisation rating."})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review, "rating": org.Rating})
}

// ListOrganisationReviews fetches all reviews for an organisation.
func (rc *ReviewController) ListOrganisationReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organisation ID format."})
		return
	}

	var org models.Organisation
	if err := rc.DB.First(&org, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Organisation not found."})
			return
		}
		logrus.WithError(err).Error("Error fetching organisation for reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch organisation."})
		return
	}

	reviews := []models.OrganisationReview{}
	if err := rc.DB.Where("organisation_id = ?", org.ID).Order("id").Find(&reviews).Error; err != nil {
		logrus.WithError(err).Error("Error listing organisation reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reviews})
}
