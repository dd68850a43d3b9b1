package handlers

import (
	"net/http"

	"lanchonete/internal/services"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveryService services.DeliveryService
}

func NewDeliveryHandler(deliveryService services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// ListActive returns the neighborhoods offered at checkout.
func (h *DeliveryHandler) ListActive(c *gin.Context) {
	neighborhoods, err := h.deliveryService.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

// ListAll returns active and inactive neighborhoods for the admin.
func (h *DeliveryHandler) ListAll(c *gin.Context) {
	neighborhoods, err := h.deliveryService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

func (h *DeliveryHandler) Add(c *gin.Context) {
	var input services.NeighborhoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido."})
		return
	}
	n, err := h.deliveryService.Add(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *DeliveryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input services.NeighborhoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido."})
		return
	}
	n, err := h.deliveryService.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *DeliveryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.deliveryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deletado"})
}
