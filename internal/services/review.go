package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resenia/reviews-backend/internal/models"
	"github.com/resenia/reviews-backend/internal/sentiment"
	"github.com/resenia/reviews-backend/internal/validation"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type ReviewResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	UserID    uint            `json:"user_id"`
	Content   string          `json:"content"`
	Rating    int             `json:"rating"`
	Sentiment sentiment.Label `json:"sentiment"`
	Author    string          `json:"author"`
	AvatarURL string          `json:"avatar_url,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// Create inserts one review for the (product, user) pair. The sentiment
// label is derived once here and stored with the row; it is never
// recomputed on read. A second review for the same pair fails with
// ErrDuplicateReview and leaves the first review unmodified.
func (s *ReviewService) Create(ctx context.Context, userID uint, productID uuid.UUID, in validation.ReviewInput) (*models.Review, error) {
	fields, err := validation.ValidateReview(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, wrapStore(err)
	}

	review := models.Review{
		ProductID: productID,
		UserID:    userID,
		Content:   fields.Content,
		Rating:    fields.Rating,
		Sentiment: fields.Sentiment,
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, translateCreateError(err)
	}

	if err := s.db.WithContext(ctx).Preload("User").First(&review, "id = ?", review.ID).Error; err != nil {
		return nil, wrapStore(err)
	}

	return &review, nil
}

// ListByProduct returns all reviews for a product, most recent first.
func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]ReviewResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if err := s.ensureProductExists(ctx, productID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.WithContext(ctx).Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, wrapStore(err)
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		author := "Anonymous"
		if review.User.ID != 0 && review.User.DisplayName != "" {
			author = review.User.DisplayName
		}

		response = append(response, ReviewResponse{
			ID:        review.ID,
			ProductID: review.ProductID,
			UserID:    review.UserID,
			Content:   review.Content,
			Rating:    review.Rating,
			Sentiment: review.Sentiment,
			Author:    author,
			AvatarURL: review.User.AvatarURL,
			CreatedAt: review.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return response, nil
}

// Summary recomputes the sentiment distribution for a product from a
// fresh read of its reviews. Nothing is cached.
func (s *ReviewService) Summary(ctx context.Context, productID uuid.UUID) (*sentiment.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	if err := s.ensureProductExists(ctx, productID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.WithContext(ctx).Select("rating", "sentiment").
		Where("product_id = ?", productID).
		Find(&reviews).Error; err != nil {
		return nil, wrapStore(err)
	}

	entries := make([]sentiment.Entry, len(reviews))
	for i := range reviews {
		entries[i] = reviews[i].Entry()
	}

	summary := sentiment.Summarize(entries)
	return &summary, nil
}

func (s *ReviewService) ensureProductExists(ctx context.Context, productID uuid.UUID) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		return wrapStore(err)
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return nil
}

// translateCreateError maps the unique (product_id, user_id) index
// violation onto ErrDuplicateReview. Uniqueness is the store's job, not
// the validator's.
func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReview
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrProductNotFound
	}
	return wrapStore(err)
}
