package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resenia/reviews-backend/internal/sentiment"
)

type Review struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	Content   string          `json:"content" gorm:"not null"`
	Rating    int             `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Sentiment sentiment.Label `json:"sentiment" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Entry projects the stored (rating, sentiment) pair for aggregation.
func (r *Review) Entry() sentiment.Entry {
	return sentiment.Entry{Rating: r.Rating, Label: r.Sentiment}
}
