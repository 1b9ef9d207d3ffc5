package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/internal/utils"
	"github.com/resenia/reviews-backend/internal/validation"
)

// currentUserID reads the identity the auth middleware placed in the
// request context. A zero id means the route was reached without an
// authenticated user.
func currentUserID(c *gin.Context) (uint, error) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		return 0, services.ErrUnauthenticated
	}
	return userID, nil
}

// respondServiceError maps a service error onto exactly one HTTP
// response, in priority order: field validation, duplicate review,
// authentication, ownership, missing rows, then a generic store
// failure. The raw store error is never exposed to the client.
func respondServiceError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		utils.SendError(c, http.StatusBadRequest, "Validation failed", fieldErr)
	case errors.Is(err, services.ErrDuplicateReview):
		utils.SendError(c, http.StatusConflict, "You have already reviewed this product", nil)
	case errors.Is(err, services.ErrUnauthenticated):
		utils.SendUnauthorized(c, "Authentication required")
	case errors.Is(err, services.ErrNotOwner):
		utils.SendForbidden(c, "Only the owner can modify this product")
	case errors.Is(err, services.ErrProductNotFound):
		utils.SendNotFound(c, "Product not found")
	default:
		utils.SendInternalError(c, "Something went wrong, please try again later", nil)
	}
}
