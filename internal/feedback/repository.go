package feedback

import (
	"context"
	"database/sql"
)

type Repository interface {
	Save(ctx context.Context, f *Feedback) error
	List(ctx context.Context) ([]Feedback, error)
	CountByRating(ctx context.Context) (map[int]int, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Save(ctx context.Context, f *Feedback) error {
	query := `
		INSERT INTO feedbacks (id, name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, f.ID, f.Name, f.Rating, f.Comment, f.CreatedAt)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]Feedback, error) {
	query := `SELECT id, name, rating, comment, created_at FROM feedbacks ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := []Feedback{}
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}

func (r *postgresRepo) CountByRating(ctx context.Context) (map[int]int, error) {
	query := `SELECT rating, COUNT(*) FROM feedbacks GROUP BY rating`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		counts[rating] = count
	}
	return counts, rows.Err()
}
