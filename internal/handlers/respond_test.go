package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lanchonete/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation error surfaces verbatim",
			err:        services.Validationf("Estoque insuficiente para FALCÃO. Restam 1."),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Estoque insuficiente para FALCÃO. Restam 1."}`,
		},
		{
			name:       "not found",
			err:        services.NotFoundf("Produto 42 não encontrado."),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Produto 42 não encontrado."}`,
		},
		{
			name:       "internal errors stay generic",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Erro interno do servidor. Tente mais tarde."}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	makeCtx := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set("X-User-ID", header)
		}
		return c
	}

	assert.Equal(t, uint(7), currentUserID(makeCtx("7")))
	assert.Equal(t, uint(0), currentUserID(makeCtx("")), "missing header means guest")
	assert.Equal(t, uint(0), currentUserID(makeCtx("abc")))
}
