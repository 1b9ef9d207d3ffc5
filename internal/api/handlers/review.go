package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/internal/utils"
	"github.com/resenia/reviews-backend/internal/validation"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	var req validation.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, productID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Review created successfully", review)
}

func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	reviews, err := h.reviewService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) GetProductSummary(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	summary, err := h.reviewService.Summary(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Summary computed successfully", summary)
}
