package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrDuplicateReview   = errors.New("user has already written a review for this movie")
)
