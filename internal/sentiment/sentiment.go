package sentiment

import "math"

// Label is the sentiment assigned to a review at creation time.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Classify derives the sentiment label from a star rating.
// Ratings of 4 and above are positive, 2 and below are negative.
func Classify(rating int) Label {
	switch {
	case rating >= 4:
		return Positive
	case rating <= 2:
		return Negative
	default:
		return Neutral
	}
}

// Entry is the (rating, label) pair of one stored review.
type Entry struct {
	Rating int
	Label  Label
}

// Summary is the derived sentiment distribution for one product.
// It is recomputed from the current review set on every read and
// never persisted.
type Summary struct {
	PositiveCount   int     `json:"positive_count"`
	NeutralCount    int     `json:"neutral_count"`
	NegativeCount   int     `json:"negative_count"`
	TotalCount      int     `json:"total_count"`
	PositivePercent int     `json:"positive_percent"`
	NeutralPercent  int     `json:"neutral_percent"`
	NegativePercent int     `json:"negative_percent"`
	AverageRating   float64 `json:"average_rating"`
}

// Summarize computes the sentiment distribution and average rating for
// a set of reviews. The result depends only on the multiset of entries,
// not on their order. An empty set yields the zero Summary.
func Summarize(entries []Entry) Summary {
	var s Summary
	s.TotalCount = len(entries)
	if s.TotalCount == 0 {
		return s
	}

	var ratingSum int
	for _, e := range entries {
		ratingSum += e.Rating
		switch e.Label {
		case Positive:
			s.PositiveCount++
		case Negative:
			s.NegativeCount++
		default:
			s.NeutralCount++
		}
	}

	total := float64(s.TotalCount)
	s.PositivePercent = int(math.Round(float64(s.PositiveCount) / total * 100))
	s.NeutralPercent = int(math.Round(float64(s.NeutralCount) / total * 100))
	s.NegativePercent = int(math.Round(float64(s.NegativeCount) / total * 100))
	s.AverageRating = float64(ratingSum) / total

	return s
}
