package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LocationHistoryController struct {
	service *services.LocationHistoryService
}

func NewLocationHistoryController(service *services.LocationHistoryService) *LocationHistoryController {
	return &LocationHistoryController{service: service}
}

func (c *LocationHistoryController) GetAllLocationHistory(ctx *gin.Context) {
	result, err := c.service.GetAllLocationHistory(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *LocationHistoryController) GetLocationHistoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	record, err := c.service.GetLocationHistoryByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func (c *LocationHistoryController) GetLocationHistoryFormData(ctx *gin.Context) {
	data, err := c.service.GetLocationHistoryFormData()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// CreateLocationHistory records a location change; the responsible user
// defaults to the authenticated actor
func (c *LocationHistoryController) CreateLocationHistory(ctx *gin.Context) {
	var record models.LocationHistoryModel
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateLocationHistory(&record, currentUserID(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *LocationHistoryController) UpdateLocationHistory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var record models.LocationHistoryModel
	if err := ctx.ShouldBindJSON(&record); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateLocationHistory(id, &record)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *LocationHistoryController) DeleteLocationHistory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteLocationHistory(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Location record deleted successfully"})
}

func (c *LocationHistoryController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
