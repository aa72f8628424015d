package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidFeedback marks submissions rejected by validation, as opposed to
// storage failures.
var ErrInvalidFeedback = errors.New("invalid feedback")

type Service interface {
	Submit(ctx context.Context, name string, rating int, comment string) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, name string, rating int, comment string) (*Feedback, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidFeedback)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidFeedback)
	}

	f := &Feedback{
		ID:        uuid.New(),
		Name:      name,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]Feedback, error) {
	return s.repo.List(ctx)
}

// Stats normalizes the raw per-rating counts: every bucket from 1 to 5 is
// present and the average is 0 when nothing is stored yet.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.repo.CountByRating(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{RatingDistribution: make(map[int]int, 5)}
	sum := 0
	for rating := 1; rating <= 5; rating++ {
		count := counts[rating]
		stats.RatingDistribution[rating] = count
		stats.Total += count
		sum += rating * count
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Total)
	}
	return stats, nil
}
