package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driver_hire/internal/controllers"
)

func OrganisationRoutes(r *gin.Engine, db *gorm.DB) {
	oc := controllers.NewOrganisationController(db)
	rc := controllers.NewReviewController(db)

	organisations := r.Group("/organisations")
	{
		organisations.GET("", oc.ListOrganisations)
		organisations.GET("/:id", oc.GetOrganisation)
		organisations.POST("", oc.CreateOrganisation)
		organisations.PUT("/:id", oc.UpdateOrganisation)
		organisations.DELETE("/:id", oc.DeleteOrganisation)

		organisations.GET("/:id/reviews", rc.ListOrganisationReviews)
		organisations.POST("/:id/reviews", rc.CreateOrganisationReview)
	}
}
