package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/internal/validation"
)

func recordServiceError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"field validation", &validation.FieldError{Field: "name", Reason: "required"}, http.StatusBadRequest},
		{"duplicate review", services.ErrDuplicateReview, http.StatusConflict},
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized},
		{"not owner", services.ErrNotOwner, http.StatusForbidden},
		{"product not found", services.ErrProductNotFound, http.StatusNotFound},
		{"store failure", services.ErrStoreFailure, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondServiceErrorHidesStoreDetails(t *testing.T) {
	w := recordServiceError(errors.New("pq: connection reset by peer"))

	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestRespondServiceErrorNamesInvalidField(t *testing.T) {
	w := recordServiceError(&validation.FieldError{Field: "image_url", Reason: "must be a valid absolute URL"})

	assert.Contains(t, w.Body.String(), "image_url")
}

func TestWriteHandlersRejectMissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Nil services are safe here: the identity check runs before any
	// service call, so these handlers must bail out with 401 first.
	products := NewProductHandler(nil, nil, nil)
	reviews := NewReviewHandler(nil)

	router := gin.New()
	router.POST("/products", products.CreateProduct)
	router.DELETE("/products/:product_id", products.DeleteProduct)
	router.POST("/products/:product_id/reviews", reviews.CreateReview)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"create product", http.MethodPost, "/products"},
		{"delete product", http.MethodDelete, "/products/7d4f0f6e-8a3b-4f7d-9c2e-1b5a6d8e9f0a"},
		{"create review", http.MethodPost, "/products/7d4f0f6e-8a3b-4f7d-9c2e-1b5a6d8e9f0a/reviews"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
