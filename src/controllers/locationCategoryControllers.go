package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type LocationCategoryController struct {
	service *services.LocationCategoryService
}

func NewLocationCategoryController(service *services.LocationCategoryService) *LocationCategoryController {
	return &LocationCategoryController{service: service}
}

func (c *LocationCategoryController) GetAllLocationCategories(ctx *gin.Context) {
	result, err := c.service.GetAllLocationCategories(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *LocationCategoryController) GetLocationCategoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	category, err := c.service.GetLocationCategoryByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (c *LocationCategoryController) CreateLocationCategory(ctx *gin.Context) {
	var category models.LocationCategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateLocationCategory(&category)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *LocationCategoryController) UpdateLocationCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var category models.LocationCategoryModel
	if err := ctx.ShouldBindJSON(&category); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateLocationCategory(id, &category)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *LocationCategoryController) DeleteLocationCategory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteLocationCategory(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Location category deleted successfully"})
}

func (c *LocationCategoryController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
