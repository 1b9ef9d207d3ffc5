package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/resenia/reviews-backend/internal/sentiment"
)

// Field length bounds for product and review submissions.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 100
	MaxImageURLLength    = 500
	MaxContentLength     = 5000
	MinRating            = 1
	MaxRating            = 5
)

// FieldError reports the first field that failed validation. The caller
// shows one actionable message per failed attempt.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProductInput is a raw product submission as received from the client.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// ProductFields is a normalized product submission. Optional fields are
// nil when absent, never stored as empty strings.
type ProductFields struct {
	Name        string
	Description *string
	Category    *string
	ImageURL    *string
}

// ReviewInput is a raw review submission.
type ReviewInput struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// ReviewFields is a normalized review submission with its derived
// sentiment label.
type ReviewFields struct {
	Content   string
	Rating    int
	Sentiment sentiment.Label
}

// ValidateProduct checks a product submission rule by rule, first
// failure wins. It does not consult the store.
func ValidateProduct(in ProductInput) (*ProductFields, error) {
	// Bounds count characters, not bytes; accented text must not be
	// penalized for its UTF-8 encoding.
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > MaxNameLength {
		return nil, &FieldError{Field: "name", Reason: fmt.Sprintf("must be between 1 and %d characters", MaxNameLength)}
	}

	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		return nil, &FieldError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)}
	}

	if utf8.RuneCountInString(in.Category) > MaxCategoryLength {
		return nil, &FieldError{Field: "category", Reason: fmt.Sprintf("must be at most %d characters", MaxCategoryLength)}
	}

	if in.ImageURL != "" {
		if utf8.RuneCountInString(in.ImageURL) > MaxImageURLLength {
			return nil, &FieldError{Field: "image_url", Reason: fmt.Sprintf("must be at most %d characters", MaxImageURLLength)}
		}
		if !isAbsoluteURL(in.ImageURL) {
			return nil, &FieldError{Field: "image_url", Reason: "must be a valid absolute URL"}
		}
	}

	return &ProductFields{
		Name:        name,
		Description: optional(in.Description),
		Category:    optional(in.Category),
		ImageURL:    optional(in.ImageURL),
	}, nil
}

// ValidateReview checks a review submission and derives its sentiment.
func ValidateReview(in ReviewInput) (*ReviewFields, error) {
	content := strings.TrimSpace(in.Content)
	if n := utf8.RuneCountInString(content); n < 1 || n > MaxContentLength {
		return nil, &FieldError{Field: "content", Reason: fmt.Sprintf("must be between 1 and %d characters", MaxContentLength)}
	}

	if in.Rating < MinRating || in.Rating > MaxRating {
		return nil, &FieldError{Field: "rating", Reason: fmt.Sprintf("must be between %d and %d", MinRating, MaxRating)}
	}

	return &ReviewFields{
		Content:   content,
		Rating:    in.Rating,
		Sentiment: sentiment.Classify(in.Rating),
	}, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// optional converts the empty string into an explicit absent marker.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
