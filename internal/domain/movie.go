package domain

import "context"

type Movie struct {
	ID       int
	Title    string
	Duration int // minutes
}

type MovieRepository interface {
	GetById(ctx context.Context, id int) (*Movie, error)
}
