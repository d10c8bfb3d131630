package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ClassificationController struct {
	service *services.ClassificationService
}

func NewClassificationController(service *services.ClassificationService) *ClassificationController {
	return &ClassificationController{service: service}
}

// GetAllClassifications handles GET requests for the paginated listing
func (c *ClassificationController) GetAllClassifications(ctx *gin.Context) {
	result, err := c.service.GetAllClassifications(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetClassificationByID handles GET requests for a single record
func (c *ClassificationController) GetClassificationByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	classification, err := c.service.GetClassificationByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classification)
}

// CreateClassification handles POST requests to create a new record
func (c *ClassificationController) CreateClassification(ctx *gin.Context) {
	var classification models.ClassificationModel
	if err := ctx.ShouldBindJSON(&classification); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateClassification(&classification)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateClassification handles PUT requests to update a record by ID
func (c *ClassificationController) UpdateClassification(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var classification models.ClassificationModel
	if err := ctx.ShouldBindJSON(&classification); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateClassification(id, &classification)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteClassification handles DELETE requests; a classification referenced
// by pieces is rejected with a conflict
func (c *ClassificationController) DeleteClassification(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteClassification(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Classification deleted successfully"})
}

// CheckField handles the incremental single-field validation endpoint
func (c *ClassificationController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
