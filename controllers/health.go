package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

func (h HealthController) Status(c *gin.Context) {
	err := h.DB.WithContext(c.Request.Context()).Exec(`SELECT 1`).Error
	if err != nil {
		h.Logger.Errorw("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
