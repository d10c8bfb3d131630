package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ConservationStatusController struct {
	service *services.ConservationStatusService
}

func NewConservationStatusController(service *services.ConservationStatusService) *ConservationStatusController {
	return &ConservationStatusController{service: service}
}

func (c *ConservationStatusController) GetAllConservationStatuses(ctx *gin.Context) {
	result, err := c.service.GetAllConservationStatuses(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *ConservationStatusController) GetConservationStatusByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	report, err := c.service.GetConservationStatusByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

func (c *ConservationStatusController) GetConservationStatusFormData(ctx *gin.Context) {
	data, err := c.service.GetConservationStatusFormData()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// CreateConservationStatus records an evaluation report; the evaluating
// user defaults to the authenticated actor
func (c *ConservationStatusController) CreateConservationStatus(ctx *gin.Context) {
	var report models.ConservationStatusModel
	if err := ctx.ShouldBindJSON(&report); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateConservationStatus(&report, currentUserID(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *ConservationStatusController) UpdateConservationStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var report models.ConservationStatusModel
	if err := ctx.ShouldBindJSON(&report); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateConservationStatus(id, &report)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *ConservationStatusController) DeleteConservationStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteConservationStatus(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Conservation report deleted successfully"})
}

func (c *ConservationStatusController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
