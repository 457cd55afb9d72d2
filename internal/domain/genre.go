package domain

type Genre struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type GenreRepository interface {
	CrudRepository[Genre]
}
