package domain

import "context"

type Review struct {
	ID       int
	MovieID  int
	UserID   int
	UserName string
	Comment  string
	Score    int
}

type ReviewRepository interface {
	GetAllByMovie(ctx context.Context, movieID int, p Pagination) ([]Review, *Metadata, error)
	GetByID(ctx context.Context, id int) (*Review, error)
	ExistsByMovieAndUser(ctx context.Context, movieID, userID int) (bool, error)
	Insert(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id int) error
}
