package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movieverse/movie-catalog-api/internal/domain"
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx the repositories rely on,
// so aggregate repositories can run the same statements inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Table describes how one entity type maps onto its table: the writable
// columns and closures to read and stamp the identifier. It is the strategy
// object that lets CrudRepository stay generic without reflection.
type Table[E any] struct {
	Name    string
	Columns []string
	Values  func(e *E) []any
	ID      func(e *E) *int
}

// CrudRepository implements domain.CrudRepository for any flat entity.
type CrudRepository[E any] struct {
	db    DBTX
	table Table[E]
}

func NewCrudRepository[E any](db *pgxpool.Pool, table Table[E]) *CrudRepository[E] {
	return &CrudRepository[E]{db: db, table: table}
}

func (r *CrudRepository[E]) selectColumns() []string {
	return append([]string{"id"}, r.table.Columns...)
}

func (r *CrudRepository[E]) GetAll(ctx context.Context, p domain.Pagination) ([]E, *domain.Metadata, error) {
	countQuery, countArgs, err := psql.Select("count(*)").From(r.table.Name).ToSql()
	if err != nil {
		return nil, nil, err
	}

	var totalRecords int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&totalRecords); err != nil {
		return nil, nil, err
	}

	query, args, err := psql.Select(r.selectColumns()...).
		From(r.table.Name).
		OrderBy("id").
		Limit(uint64(p.Limit())).
		Offset(uint64(p.Offset())).
		ToSql()
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, nil, err
	}

	return entities, domain.NewMetadata(totalRecords, p), nil
}

func (r *CrudRepository[E]) GetByID(ctx context.Context, id int) (*E, error) {
	query, args, err := psql.Select(r.selectColumns()...).
		From(r.table.Name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	entity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &entity, nil
}

func (r *CrudRepository[E]) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+r.table.Name+" WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *CrudRepository[E]) Insert(ctx context.Context, entity *E) error {
	query, args, err := psql.Insert(r.table.Name).
		Columns(r.table.Columns...).
		Values(r.table.Values(entity)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, query, args...).Scan(r.table.ID(entity))
}

func (r *CrudRepository[E]) Update(ctx context.Context, entity *E) error {
	builder := psql.Update(r.table.Name)

	values := r.table.Values(entity)
	for i, column := range r.table.Columns {
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.Where(squirrel.Eq{"id": *r.table.ID(entity)}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *CrudRepository[E]) Delete(ctx context.Context, id int) error {
	query, args, err := psql.Delete(r.table.Name).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
