package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lanchonete/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures to HTTP statuses: validation errors are
// surfaced verbatim (400, or 404 for missing entities), anything else is a
// generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		status := http.StatusBadRequest
		if verr.NotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": verr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor. Tente mais tarde."})
}

// currentUserID reads the identity resolved by the auth layer in front of
// this service. Zero means guest.
func currentUserID(c *gin.Context) uint {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido."})
		return 0, false
	}
	return uint(id), true
}
