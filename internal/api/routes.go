package api

import "github.com/gin-gonic/gin"

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)
		api.POST("/valuation", handler.Valuate)
		api.POST("/investment", handler.ProjectInvestment)
		api.POST("/listings", handler.UpsertListings)
	}
}
