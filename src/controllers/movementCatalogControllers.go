package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MovementCatalogController struct {
	service *services.MovementCatalogService
}

func NewMovementCatalogController(service *services.MovementCatalogService) *MovementCatalogController {
	return &MovementCatalogController{service: service}
}

func (c *MovementCatalogController) GetAllMovementCatalogs(ctx *gin.Context) {
	result, err := c.service.GetAllMovementCatalogs(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *MovementCatalogController) GetMovementCatalogByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	catalog, err := c.service.GetMovementCatalogByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, catalog)
}

func (c *MovementCatalogController) CreateMovementCatalog(ctx *gin.Context) {
	var catalog models.MovementCatalogModel
	if err := ctx.ShouldBindJSON(&catalog); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateMovementCatalog(&catalog)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *MovementCatalogController) UpdateMovementCatalog(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var catalog models.MovementCatalogModel
	if err := ctx.ShouldBindJSON(&catalog); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateMovementCatalog(id, &catalog)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *MovementCatalogController) DeleteMovementCatalog(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteMovementCatalog(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Movement catalog deleted successfully"})
}

func (c *MovementCatalogController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
