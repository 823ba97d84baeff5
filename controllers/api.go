package controllers

import (
	"errors"
	"net/http"

	"fundamentals/models"

	"github.com/gin-gonic/gin"
)

var (
	ErrSymbolRequired = errors.New("Symbol is required")
	ErrInvalidPage    = errors.New("Invalid page")
	ErrInvalidID      = errors.New("Invalid id")
	ErrInvalidPeriod  = errors.New("invalid period")
	ErrInvalidDate    = errors.New("Invalid date")
	ErrInvalidRange   = errors.New("Invalid range")
)

type errorResponse struct {
	Error string `json:"error"`
}

func RespondOK(c *gin.Context, obj any) {
	c.JSON(http.StatusOK, obj)
}

func RespondBadRequestErr(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func RespondNotFoundErr(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: err.Error()})
}

func RespondInternalErr(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// RespondStoreErr picks the status for an error returned by a repository.
func RespondStoreErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		RespondNotFoundErr(c, models.ErrRecordNotFound)
	case models.IsClientError(err):
		RespondBadRequestErr(c, err)
	default:
		RespondInternalErr(c, err)
	}
}
