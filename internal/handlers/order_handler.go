package handlers

import (
	"net/http"

	"lanchonete/internal/models"
	"lanchonete/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places a new order from the checkout cart.
func (h *OrderHandler) Create(c *gin.Context) {
	var cart services.CartPayload
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de pedido inválido."})
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), currentUserID(c), cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListMine returns the calling customer's own orders.
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identificação obrigatória."})
		return
	}
	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Status is the lightweight polling endpoint the app hits while waiting for
// the kitchen.
func (h *OrderHandler) Status(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	info, err := h.orderService.GetOrderStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// CancelMine lets the customer cancel while the order is still Recebido.
func (h *OrderHandler) CancelMine(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID := currentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identificação obrigatória."})
		return
	}
	if _, err := h.orderService.CancelByCustomer(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido cancelado com sucesso."})
}

// ListDaily feeds the kitchen panel with today's orders.
func (h *OrderHandler) ListDaily(c *gin.Context) {
	orders, err := h.orderService.GetDailyOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus moves an order along the kitchen flow.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido."})
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status atualizado!", "order": order})
}

// CancelByAdmin soft-cancels a problematic order from the back office.
func (h *OrderHandler) CancelByAdmin(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.CancelByAdmin(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Pedido cancelado e arquivado com sucesso.",
		"order":   order,
	})
}

// PaymentWebhook receives payment-status updates from the gateway, keyed by
// the external reference generated at checkout.
func (h *OrderHandler) PaymentWebhook(c *gin.Context) {
	var req struct {
		ExternalReference string               `json:"external_reference"`
		Status            models.PaymentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido."})
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(req.ExternalReference, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "payment_status": order.PaymentStatus})
}
