package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/storage/sqlstore"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	// codeUniqueViolation is the PostgreSQL error code of unique constraint violations
	codeUniqueViolation = "23505"

	// codeForeignKeyViolation is the PostgreSQL error code of foreign key violations
	codeForeignKeyViolation = "23503"
)

// querier is implemented by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// table executes the queries built by a sqlstore.Table against PostgreSQL.
// It serves as the query.Source of a record type.
type table[T any] struct {
	db  *pgxpool.Pool
	def *sqlstore.Table[T]
}

var _ query.Source[any] = (*table[any])(nil)

func newTable[T any](db *pgxpool.Pool, def *sqlstore.Table[T]) *table[T] {
	return &table[T]{db: db, def: def}
}

// Count counts the rows matching a plan
func (tbl *table[T]) Count(ctx context.Context, plan *query.Plan[T]) (uint64, error) {
	sql, vals, err := tbl.def.Count(plan).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var n uint64
	if err := tbl.db.QueryRow(ctx, sql, vals...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Fetch fetches the window of rows a plan describes
func (tbl *table[T]) Fetch(ctx context.Context, plan *query.Plan[T]) ([]T, error) {
	sql, vals, err := tbl.def.Select(plan).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tbl.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	objs := make([]T, 0, plan.Limit)
	for rows.Next() {
		obj, err := tbl.def.Scan(rows)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return objs, nil
}

// GetByID retrieves a record by its ID
func (tbl *table[T]) GetByID(ctx context.Context, id int64) (T, error) {
	return tbl.first(ctx, tbl.db, tbl.def.ByID(id))
}

// Delete deletes a record by its ID
func (tbl *table[T]) Delete(ctx context.Context, id int64) error {
	sql, vals, err := tbl.def.Delete(id).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}
	_, err = tbl.db.Exec(ctx, sql, vals...)
	return err
}

func (tbl *table[T]) paged(ctx context.Context, conditions []query.Condition, request *query.Request) (*query.Page[T], error) {
	return query.Shape[T](ctx, tbl, tbl.def.Fields, conditions, request)
}

// first retrieves the first row a query returns; the zero value is returned if there is none
func (tbl *table[T]) first(ctx context.Context, q querier, builder squirrel.SelectBuilder) (T, error) {
	var zero T
	sql, vals, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return zero, err
	}

	obj, err := tbl.def.Scan(q.QueryRow(ctx, sql, vals...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, nil
		}
		return zero, err
	}
	return obj, nil
}

// insert inserts a record and returns its generated ID
func (tbl *table[T]) insert(ctx context.Context, q querier, record T) (int64, error) {
	sql, vals, err := tbl.def.Insert(record).
		Suffix("RETURNING " + tbl.def.Key()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sql, vals...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// update sets some columns of a single row and reports whether the row exists
func (tbl *table[T]) update(ctx context.Context, q querier, id int64, values map[string]any) (bool, error) {
	sql, vals, err := tbl.def.Update(id, values).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return false, err
	}

	tag, err := q.Exec(ctx, sql, vals...)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() > 0, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return storage.ErrDuplicate
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %s", storage.ErrUnknownReference, pgErr.ConstraintName)
	}
	return err
}
