package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusRecebido, StatusEmPreparo, StatusSaiuParaEntrega, StatusConcluido, StatusCancelado,
	} {
		assert.True(t, s.Valid(), "%s", s)
	}
	assert.False(t, OrderStatus("Na Chapa").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("recebido").Valid(), "statuses are case sensitive")
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, StatusConcluido.Terminal())
	assert.True(t, StatusCancelado.Terminal())
	assert.False(t, StatusRecebido.Terminal())
	assert.False(t, StatusEmPreparo.Terminal())
	assert.False(t, StatusSaiuParaEntrega.Terminal())
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, PaymentPending.Valid())
	assert.True(t, PaymentApproved.Valid())
	assert.True(t, PaymentRejected.Valid())
	assert.False(t, PaymentStatus("refunded").Valid())
}
