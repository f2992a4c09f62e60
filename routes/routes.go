package routes

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stormbless/foodprint-backend/config"
	"github.com/stormbless/foodprint-backend/controllers"
	"github.com/stormbless/foodprint-backend/middlewares"
	"github.com/stormbless/foodprint-backend/services"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{os.Getenv("FRONTEND")}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	foodSvc := services.NewFoodService(config.DB)
	entrySvc := services.NewFoodEntryService()

	authCtl := controllers.NewAuthController(foodSvc, entrySvc)
	impactCtl := controllers.NewImpactController(entrySvc)

	api := r.Group("/api")
	{
		api.POST("/login", authCtl.Login)
		api.POST("/authenticate-access-token", middlewares.AuthenticateAccessToken(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		api.POST("/refresh-token", middlewares.AuthenticateRefreshToken(), authCtl.RefreshToken)
		api.POST("/logout", middlewares.AuthenticateAccessToken(), authCtl.Logout)
		api.GET("/dashboard-data", middlewares.AuthenticateAccessToken(), impactCtl.GetDashboardData)
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Backend for FoodPrint.</h1>"))
	})
	r.GET("/get-health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"health": "healthy"})
	})

	return r
}
