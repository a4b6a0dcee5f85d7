package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cfelipe-app/Route/internal/query"
	"github.com/cfelipe-app/Route/internal/storage"
	"github.com/cfelipe-app/Route/internal/storage/sqlstore"
	gomysql "github.com/go-sql-driver/mysql"
)

const (
	// errDuplicateEntry is the MySQL error number of unique key violations
	errDuplicateEntry = 1062

	// errNoReferencedRow is the MySQL error number of foreign key violations on insert or update
	errNoReferencedRow = 1452
)

// querier is implemented by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// table executes the queries built by a sqlstore.Table against MySQL.
// It serves as the query.Source of a record type.
type table[T any] struct {
	db  *sql.DB
	def *sqlstore.Table[T]
}

func newTable[T any](db *sql.DB, def *sqlstore.Table[T]) *table[T] {
	return &table[T]{db: db, def: def}
}

// Count counts the rows matching a plan
func (tbl *table[T]) Count(ctx context.Context, plan *query.Plan[T]) (uint64, error) {
	stmt, vals, err := tbl.def.Count(plan).PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return 0, err
	}

	var n uint64
	if err := tbl.db.QueryRowContext(ctx, stmt, vals...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Fetch fetches the window of rows a plan describes
func (tbl *table[T]) Fetch(ctx context.Context, plan *query.Plan[T]) ([]T, error) {
	stmt, vals, err := tbl.def.Select(plan).PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := tbl.db.QueryContext(ctx, stmt, vals...)
	if err != nil {
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
	stmt, vals, err := tbl.def.Delete(id).PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return err
	}
	_, err = tbl.db.ExecContext(ctx, stmt, vals...)
	return err
}

func (tbl *table[T]) paged(ctx context.Context, conditions []query.Condition, request *query.Request) (*query.Page[T], error) {
	return query.Shape[T](ctx, tbl, tbl.def.Fields, conditions, request)
}

// first retrieves the first row a query returns; the zero value is returned if there is none
func (tbl *table[T]) first(ctx context.Context, q querier, builder squirrel.SelectBuilder) (T, error) {
	var zero T
	stmt, vals, err := builder.PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return zero, err
	}

	obj, err := tbl.def.Scan(q.QueryRowContext(ctx, stmt, vals...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, nil
		}
		return zero, err
	}
	return obj, nil
}

// insert inserts a record and returns its generated ID
func (tbl *table[T]) insert(ctx context.Context, q querier, record T) (int64, error) {
	stmt, vals, err := tbl.def.Insert(record).PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := q.ExecContext(ctx, stmt, vals...)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

// update sets some columns of a single row and reports whether the row was changed
func (tbl *table[T]) update(ctx context.Context, q querier, id int64, values map[string]any) (bool, error) {
	stmt, vals, err := tbl.def.Update(id, values).PlaceholderFormat(squirrel.Question).ToSql()
	if err != nil {
		return false, err
	}

	res, err := q.ExecContext(ctx, stmt, vals...)
	if err != nil {
		return false, translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func translate(err error) error {
	var myErr *gomysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}
	switch myErr.Number {
	case errDuplicateEntry:
		return storage.ErrDuplicate
	case errNoReferencedRow:
		return fmt.Errorf("%w: %s", storage.ErrUnknownReference, myErr.Message)
	}
	return err
}
