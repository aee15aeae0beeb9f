package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine and registers every resource.
// The store handle is threaded down to the controllers; nothing global.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	// Recovery middleware
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the Driver & Organisation API"})
	})

	DriverRoutes(r, db)
	OrganisationRoutes(r, db)

	return r
}
