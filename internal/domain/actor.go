package domain

import "time"

type Actor struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
	PhotoURL  string    `db:"photo_url"`
}

type ActorRepository interface {
	CrudRepository[Actor]
}
