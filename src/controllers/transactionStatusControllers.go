package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TransactionStatusController struct {
	service *services.TransactionStatusService
}

func NewTransactionStatusController(service *services.TransactionStatusService) *TransactionStatusController {
	return &TransactionStatusController{service: service}
}

func (c *TransactionStatusController) GetAllTransactionStatuses(ctx *gin.Context) {
	result, err := c.service.GetAllTransactionStatuses(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *TransactionStatusController) GetTransactionStatusByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	status, err := c.service.GetTransactionStatusByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *TransactionStatusController) CreateTransactionStatus(ctx *gin.Context) {
	var status models.TransactionStatusModel
	if err := ctx.ShouldBindJSON(&status); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateTransactionStatus(&status)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *TransactionStatusController) UpdateTransactionStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var status models.TransactionStatusModel
	if err := ctx.ShouldBindJSON(&status); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateTransactionStatus(id, &status)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *TransactionStatusController) DeleteTransactionStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteTransactionStatus(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Transaction status deleted successfully"})
}

func (c *TransactionStatusController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
