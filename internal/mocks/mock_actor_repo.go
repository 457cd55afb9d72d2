package mocks

import "github.com/movieverse/movie-catalog-api/internal/domain"

type MockActorRepo struct {
	MockCrudRepo[domain.Actor]
}

var _ domain.ActorRepository = (*MockActorRepo)(nil)
