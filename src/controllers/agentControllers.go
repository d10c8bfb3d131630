package controllers

import (
	"net/http"

	"github.com/MUSEO/MUSEO-Backend/src/models"
	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AgentController struct {
	service *services.AgentService
}

func NewAgentController(service *services.AgentService) *AgentController {
	return &AgentController{service: service}
}

func (c *AgentController) GetAllAgents(ctx *gin.Context) {
	result, err := c.service.GetAllAgents(ctx.Query("search"), parsePage(ctx))
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *AgentController) GetAgentByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	agent, err := c.service.GetAgentByID(id)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, agent)
}

func (c *AgentController) CreateAgent(ctx *gin.Context) {
	var agent models.AgentModel
	if err := ctx.ShouldBindJSON(&agent); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := c.service.CreateAgent(&agent)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

func (c *AgentController) UpdateAgent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var agent models.AgentModel
	if err := ctx.ShouldBindJSON(&agent); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := c.service.UpdateAgent(id, &agent)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

func (c *AgentController) DeleteAgent(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteAgent(id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}

func (c *AgentController) CheckField(ctx *gin.Context) {
	exclude, ok := parseExclude(ctx)
	if !ok {
		return
	}
	valid, message := c.service.CheckField(ctx.Query("field"), ctx.Query("value"), exclude)
	renderCheck(ctx, valid, message)
}
