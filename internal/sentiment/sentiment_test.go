package sentiment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		rating int
		want   Label
	}{
		{1, Negative},
		{2, Negative},
		{3, Neutral},
		{4, Positive},
		{5, Positive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.rating), "rating %d", tt.rating)
	}
}

func entriesFromRatings(ratings []int) []Entry {
	entries := make([]Entry, len(ratings))
	for i, r := range ratings {
		entries[i] = Entry{Rating: r, Label: Classify(r)}
	}
	return entries
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalCount)
	assert.Equal(t, 0, s.PositiveCount)
	assert.Equal(t, 0, s.NeutralCount)
	assert.Equal(t, 0, s.NegativeCount)
	assert.Equal(t, 0, s.PositivePercent)
	assert.Equal(t, 0, s.NeutralPercent)
	assert.Equal(t, 0, s.NegativePercent)
	assert.Equal(t, 0.0, s.AverageRating)
}

func TestSummarizeDistribution(t *testing.T) {
	s := Summarize(entriesFromRatings([]int{5, 4, 2, 3, 5}))

	assert.Equal(t, 5, s.TotalCount)
	assert.Equal(t, 3, s.PositiveCount)
	assert.Equal(t, 1, s.NeutralCount)
	assert.Equal(t, 1, s.NegativeCount)
	assert.Equal(t, 60, s.PositivePercent)
	assert.Equal(t, 20, s.NeutralPercent)
	assert.Equal(t, 20, s.NegativePercent)
	assert.InDelta(t, 3.8, s.AverageRating, 1e-9)
}

func TestSummarizeSingleReview(t *testing.T) {
	s := Summarize(entriesFromRatings([]int{3}))

	assert.Equal(t, 1, s.TotalCount)
	assert.Equal(t, 100, s.NeutralPercent)
	assert.Equal(t, 0, s.PositivePercent)
	assert.Equal(t, 3.0, s.AverageRating)
}

func TestSummarizePercentRounding(t *testing.T) {
	// 1/3 and 2/3 round to 33 and 67.
	s := Summarize(entriesFromRatings([]int{5, 5, 1}))

	assert.Equal(t, 67, s.PositivePercent)
	assert.Equal(t, 33, s.NegativePercent)
	assert.Equal(t, 0, s.NeutralPercent)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	ratings := []int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 4}
	want := Summarize(entriesFromRatings(ratings))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]int(nil), ratings...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Summarize(entriesFromRatings(shuffled)))
	}
}

func TestSummarizeUnknownLabelCountsNeutral(t *testing.T) {
	s := Summarize([]Entry{{Rating: 3, Label: "mixed"}})

	assert.Equal(t, 1, s.NeutralCount)
	assert.Equal(t, 1, s.TotalCount)
}
