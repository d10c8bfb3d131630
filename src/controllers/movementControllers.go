package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MovementController struct {
	service *services.MovementService
}

func NewMovementController(service *services.MovementService) *MovementController {
	return &MovementController{service: service}
}

func (c *MovementController) GetAllMovements(ctx *gin.Context) {
	result, err := c.service.GetAllMovements(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *MovementController) GetMovementSummaries(ctx *gin.Context) {
	summaries, err := c.service.GetMovementSummaries()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

func (c *MovementController) GetMovementByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	movement, err := c.service.GetMovementByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movement)
}

// GetMovementFormData returns the piece/type/agent selector lists
func (c *MovementController) GetMovementFormData(ctx *gin.Context) {
	data, err := c.service.GetMovementFormData()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// CreateMovement records a movement; the responsible user defaults to the
// authenticated actor when the body omits it
func (c *MovementController) CreateMovement(ctx *gin.Context) {
	var movement models.MovementModel
	if err := ctx.ShouldBindJSON(&movement); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateMovement(&movement, currentUserID(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *MovementController) UpdateMovement(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var movement models.MovementModel
	if err := ctx.ShouldBindJSON(&movement); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateMovement(id, &movement)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *MovementController) DeleteMovement(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteMovement(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Movement deleted successfully"})
}

func (c *MovementController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
