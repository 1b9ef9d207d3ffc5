package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resenia/reviews-backend/internal/services"
	"github.com/resenia/reviews-backend/internal/utils"
	"github.com/resenia/reviews-backend/internal/validation"
)

type ProductHandler struct {
	productService *services.ProductService
	reviewService  *services.ReviewService
	s3Service      *services.S3Service
}

func NewProductHandler(productService *services.ProductService, reviewService *services.ReviewService, s3Service *services.S3Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		reviewService:  reviewService,
		s3Service:      s3Service,
	}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetMyProducts(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	products, err := h.productService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Products retrieved successfully", products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The summary is derived from a fresh read of the review set on
	// every request, never cached.
	summary, err := h.reviewService.Summary(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Product retrieved successfully", gin.H{
		"product": product,
		"summary": summary,
	})
}

func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Categories retrieved successfully", categories)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var req validation.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Product created successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
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

	var req validation.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), productID, userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
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

	if err := h.productService.Delete(c.Request.Context(), productID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Product deleted successfully", nil)
}

func (h *ProductHandler) UploadProductImage(c *gin.Context) {
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

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendValidationError(c, "Failed to read image file")
		return
	}
	defer file.Close()

	result, err := h.s3Service.UploadImage(file, fileHeader)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Image upload failed", err)
		return
	}

	if err := h.productService.SetImageURL(c.Request.Context(), productID, userID, result.URL); err != nil {
		// Keep the bucket consistent with the store after a rejected write.
		h.s3Service.DeleteImage(result.Key)
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Image uploaded successfully", gin.H{"image_url": result.URL})
}
