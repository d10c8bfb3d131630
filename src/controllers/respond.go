package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MUSEO/MUSEO-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// renderError traduce los errores de los servicios al cuerpo JSON y código
// HTTP correspondientes.
func renderError(ctx *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Fields})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "No se puede eliminar: existen registros asociados"})
	case errors.Is(err, services.ErrNoRoles):
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "No hay roles configurados en el sistema"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

func parsePage(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseExclude lee el id a excluir de los chequeos de unicidad al editar.
func parseExclude(ctx *gin.Context) (*int, bool) {
	raw := ctx.Query("exclude")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude parameter"})
		return nil, false
	}
	return &id, true
}

// currentUserID recupera el actor autenticado que dejó el middleware JWT.
func currentUserID(ctx *gin.Context) *int {
	raw, exists := ctx.Get("userId")
	if !exists {
		return nil
	}
	switch value := raw.(type) {
	case float64:
		id := int(value)
		return &id
	case int:
		id := value
		return &id
	}
	return nil
}

// renderCheck responde el veredicto del chequeo incremental de un campo.
func renderCheck(ctx *gin.Context, valid bool, message string) {
	if valid {
		ctx.JSON(http.StatusOK, gin.H{"valid": true})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"valid": false, "error": message})
}
