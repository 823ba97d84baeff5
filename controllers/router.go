package controllers

import (
	"github.com/gin-gonic/gin"
)

type Router struct {
	HealthController     *HealthController
	StatementsController *StatementsController
	ProviderController   *ProviderController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	router.GET("/", func(c *gin.Context) {
		c.String(200, "ok")
	})
	router.GET("/health", r.HealthController.Status)

	//
	// Stored statements
	//
	api := router.Group("/api")
	r.StatementsController.RegisterRoutes(api)

	//
	// Provider pass-through
	//
	api.GET("/statement", r.ProviderController.GetStatement)
	api.GET("/symbols", r.ProviderController.GetSymbols)
}
