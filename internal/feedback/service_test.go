package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	saved   []Feedback
	saveErr error
}

func (r *fakeRepo) Save(_ context.Context, f *Feedback) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, *f)
	return nil
}

func (r *fakeRepo) List(_ context.Context) ([]Feedback, error) {
	out := make([]Feedback, len(r.saved))
	for i, f := range r.saved {
		out[len(r.saved)-1-i] = f
	}
	return out, nil
}

func (r *fakeRepo) CountByRating(_ context.Context) (map[int]int, error) {
	counts := make(map[int]int)
	for _, f := range r.saved {
		counts[f.Rating]++
	}
	return counts, nil
}

func TestSubmitFeedback(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	f, err := svc.Submit(context.Background(), "  Marie ", 5, " Très utile ! ")

	require.NoError(t, err)
	assert.NotEqual(t, f.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "Marie", f.Name)
	assert.Equal(t, 5, f.Rating)
	assert.Equal(t, "Très utile !", f.Comment)
	assert.False(t, f.CreatedAt.IsZero())
	require.Len(t, repo.saved, 1)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), "   ", 3, "")
		assert.ErrorIs(t, err, ErrInvalidFeedback)
	})

	t.Run("rating too low", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), "Marie", 0, "")
		assert.ErrorIs(t, err, ErrInvalidFeedback)
	})

	t.Run("rating too high", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), "Marie", 6, "")
		assert.ErrorIs(t, err, ErrInvalidFeedback)
	})
}

func TestSubmitFeedbackRepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{saveErr: errors.New("connection refused")})

	_, err := svc.Submit(context.Background(), "Marie", 4, "")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidFeedback)
}

func TestStatsEmpty(t *testing.T) {
	svc := NewService(&fakeRepo{})

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.RatingDistribution)
}

func TestStatsAggregation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	for _, rating := range []int{5, 5, 3} {
		_, err := svc.Submit(context.Background(), "Marie", rating, "")
		require.NoError(t, err)
	}

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 2}, stats.RatingDistribution)
}

func TestListMostRecentFirst(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), "Premier", 4, "")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "Second", 2, "")
	require.NoError(t, err)

	feedbacks, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, feedbacks, 2)
	assert.Equal(t, "Second", feedbacks[0].Name)
}
