package domain

import "context"

// CrudRepository is the storage contract shared by every flat catalog
// resource. Implementations persist a single table; resources with owned
// child collections override Insert/Update to cover the whole aggregate in
// one transaction.
type CrudRepository[E any] interface {
	GetAll(ctx context.Context, p Pagination) ([]E, *Metadata, error)
	GetByID(ctx context.Context, id int) (*E, error)
	Exists(ctx context.Context, id int) (bool, error)
	Insert(ctx context.Context, entity *E) error
	Update(ctx context.Context, entity *E) error
	Delete(ctx context.Context, id int) error
}
