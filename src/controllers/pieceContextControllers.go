package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type PieceContextController struct {
	service *services.PieceContextService
}

func NewPieceContextController(service *services.PieceContextService) *PieceContextController {
	return &PieceContextController{service: service}
}

func (c *PieceContextController) GetAllPieceContexts(ctx *gin.Context) {
	result, err := c.service.GetAllPieceContexts(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *PieceContextController) GetPieceContextByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	context, err := c.service.GetPieceContextByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, context)
}

// GetPieceContextFormData offers only pieces that do not have a context yet
func (c *PieceContextController) GetPieceContextFormData(ctx *gin.Context) {
	data, err := c.service.GetPieceContextFormData()
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

func (c *PieceContextController) CreatePieceContext(ctx *gin.Context) {
	var context models.PieceContextModel
	if err := ctx.ShouldBindJSON(&context); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreatePieceContext(&context)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *PieceContextController) UpdatePieceContext(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var context models.PieceContextModel
	if err := ctx.ShouldBindJSON(&context); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdatePieceContext(id, &context)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *PieceContextController) DeletePieceContext(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeletePieceContext(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Context deleted successfully"})
}

func (c *PieceContextController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
