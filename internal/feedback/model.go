package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one user review of the app, rated 1 to 5 stars.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Stats aggregates stored feedback. RatingDistribution always carries the
// five buckets, zero-filled.
type Stats struct {
	Total              int         `json:"total"`
	AverageRating      float64     `json:"average_rating"`
	RatingDistribution map[int]int `json:"rating_distribution"`
}
