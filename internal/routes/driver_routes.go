package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driver_hire/internal/controllers"
)

func DriverRoutes(r *gin.Engine, db *gorm.DB) {
	dc := controllers.NewDriverController(db)
	rc := controllers.NewReviewController(db)

	drivers := r.Group("/drivers")
	{
		drivers.GET("", dc.ListDrivers)
		drivers.GET("/:id", dc.GetDriver)
		drivers.POST("", dc.CreateDriver)
		drivers.PUT("/:id", dc.UpdateDriver)
		drivers.DELETE("/:id", dc.DeleteDriver)

		drivers.GET("/:id/reviews", rc.ListDriverReviews)
		drivers.POST("/:id/reviews", rc.CreateDriverReview)
	}
}
