package routes

import (
	"net/http"

	"ratecard/constants"
	"ratecard/controllers"
	middlewares "ratecard/middleware"
	"ratecard/response"

	_ "ratecard/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, overrideService controllers.OverrideService, jwtSecret string) {
	overrideController := controllers.NewOverrideController(overrideService)
	writers := middlewares.AuthMiddleware(jwtSecret, constants.RoleAdmin, constants.RoleHost)

	v1 := router.Group("/api/v1")
	v1.GET("/properties/:id/overrides", overrideController.GetOverrides)
	v1.GET("/properties/:id/overrides/ranges", overrideController.GetOverrideRanges)
	v1.POST("/properties/:id/overrides", writers, overrideController.SetOverrides)
	v1.DELETE("/properties/:id/overrides", writers, overrideController.DeleteOverrideRange)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(response.NotFound)
}
