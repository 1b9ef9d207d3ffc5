package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resenia/reviews-backend/internal/models"
	"github.com/resenia/reviews-backend/internal/validation"
)

const QueryTimeout = 30 * time.Second

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ProductService{
		db: db,
	}
}

type ProductFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// Create validates a raw submission and inserts the normalized product
// owned by the authenticated user.
func (s *ProductService) Create(ctx context.Context, userID uint, in validation.ProductInput) (*models.Product, error) {
	fields, err := validation.ValidateProduct(in)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		UserID:      userID,
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		ImageURL:    fields.ImageURL,
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, wrapStore(err)
	}

	return &product, nil
}

// List returns all products, newest first, optionally narrowed by a
// category filter and a name/description search term.
func (s *ProductService) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Product{}).Preload("User")
	query = s.applyFilters(query, filter)

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, wrapStore(err)
	}

	return products, nil
}

// ListByOwner returns the products created by one user, newest first.
func (s *ProductService) ListByOwner(ctx context.Context, userID uint) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, wrapStore(err)
	}

	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var product models.Product
	if err := s.db.WithContext(ctx).Preload("User").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, wrapStore(err)
	}

	return &product, nil
}

// Update replaces the mutable fields of a product. Only the owner may
// update; a rejected attempt leaves the row untouched.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, userID uint, in validation.ProductInput) (*models.Product, error) {
	fields, err := validation.ValidateProduct(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	// Ownership is enforced by filtering the write to rows owned by the
	// requesting user. Absent optional fields clear the column.
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":        fields.Name,
			"description": fields.Description,
			"category":    fields.Category,
			"image_url":   fields.ImageURL,
		})
	if res.Error != nil {
		return nil, wrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, s.ownershipError(ctx, id)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a product and, via the cascade constraint, its
// reviews. Only the owner may delete.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID, userID uint) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Product{})
	if res.Error != nil {
		return wrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return s.ownershipError(ctx, id)
	}

	return nil
}

// SetImageURL stores the public URL of an uploaded product image.
func (s *ProductService) SetImageURL(ctx context.Context, id uuid.UUID, userID uint, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("image_url", imageURL)
	if res.Error != nil {
		return wrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return s.ownershipError(ctx, id)
	}

	return nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	query := `
		SELECT DISTINCT category
		FROM products
		WHERE category IS NOT NULL AND category != ''
		ORDER BY category
	`

	categories := make([]string, 0)
	if err := s.db.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		return nil, wrapStore(err)
	}

	return categories, nil
}

// ownershipError distinguishes a missing product from one owned by
// someone else after a zero-row write.
func (s *ProductService) ownershipError(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return wrapStore(err)
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return ErrNotOwner
}

func (s *ProductService) applyFilters(query *gorm.DB, filter ProductFilter) *gorm.DB {
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(category))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		searchTerm := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
			searchTerm, searchTerm,
		)
	}

	return query
}
