package sqlstore

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cfelipe-app/Route/internal/query"
)

// Scanner is implemented by single database rows (pgx.Row, *sql.Row and *sql.Rows)
type Scanner interface {
	Scan(dest ...any) error
}

// Table describes how a record type maps onto a SQL table
type Table[T any] struct {
	Name   string
	Fields *query.Fields[T]

	// Columns holds every column in scan order; the key column comes first
	Columns []string

	// Scan reads a single row selected using Columns
	Scan func(row Scanner) (T, error)

	// Values returns the values of every column but the key column, in the order of Columns
	Values func(record T) []any
}

// Key returns the name of the key column
func (table *Table[T]) Key() string {
	return table.Fields.Key().Column
}

// Count builds the query counting every row matching a plan
func (table *Table[T]) Count(plan *query.Plan[T]) squirrel.SelectBuilder {
	return Where(squirrel.Select("COUNT(*)").From(table.Name), plan)
}

// Select builds the query fetching the window of rows a plan describes.
// Rows sharing the same sort value are ordered by their key to keep pages disjoint.
func (table *Table[T]) Select(plan *query.Plan[T]) squirrel.SelectBuilder {
	builder := Where(squirrel.Select(table.Columns...).From(table.Name), plan)

	dir := "ASC"
	if plan.Direction == query.Descending {
		dir = "DESC"
	}
	builder = builder.OrderBy(fmt.Sprintf("%s %s", plan.Sort.Column, dir))
	if key := table.Key(); plan.Sort.Column != key {
		builder = builder.OrderBy(key + " ASC")
	}

	if plan.Offset > 0 {
		builder = builder.Offset(plan.Offset)
	}
	return builder.Limit(plan.Limit)
}

// ByID builds the query fetching a single row by its key
func (table *Table[T]) ByID(id int64) squirrel.SelectBuilder {
	return squirrel.Select(table.Columns...).From(table.Name).Where(squirrel.Eq{table.Key(): id})
}

// Insert builds the statement inserting a record (without its key)
func (table *Table[T]) Insert(record T) squirrel.InsertBuilder {
	return squirrel.Insert(table.Name).Columns(table.Columns[1:]...).Values(table.Values(record)...)
}

// Update builds the statement setting some columns of a single row
func (table *Table[T]) Update(id int64, values map[string]any) squirrel.UpdateBuilder {
	return squirrel.Update(table.Name).SetMap(values).Where(squirrel.Eq{table.Key(): id})
}

// Delete builds the statement deleting a single row by its key
func (table *Table[T]) Delete(id int64) squirrel.DeleteBuilder {
	return squirrel.Delete(table.Name).Where(squirrel.Eq{table.Key(): id})
}

// GroupCount builds the query counting the rows matching a plan per distinct value of a column
func (table *Table[T]) GroupCount(column string, plan *query.Plan[T]) squirrel.SelectBuilder {
	return Where(squirrel.Select(column, "COUNT(*)").From(table.Name), plan).GroupBy(column)
}

// Where applies the predicates and the free-text term of a plan to a query.
// Filters come first, then the term, then visibility rules; all of them are combined conjunctively.
func Where[T any](builder squirrel.SelectBuilder, plan *query.Plan[T]) squirrel.SelectBuilder {
	var rules []squirrel.Sqlizer
	for _, pred := range plan.Predicates {
		switch cond := pred.Condition.(type) {
		case query.Equal:
			builder = builder.Where(squirrel.Eq{pred.Field.Column: query.Scalar(cond.Value)})
		case query.DayRange:
			if lower, ok := cond.Lower(); ok {
				builder = builder.Where(squirrel.GtOrEq{pred.Field.Column: lower})
			}
			if upper, ok := cond.Upper(); ok {
				builder = builder.Where(squirrel.Lt{pred.Field.Column: upper})
			}
		case query.Visibility:
			rules = append(rules, squirrel.Or{
				squirrel.Eq{pred.Field.Column: false},
				squirrel.Eq{pred.Target.Column: *cond.ViewerID},
			})
		}
	}

	if plan.Term != "" && len(plan.Search) > 0 {
		pattern := "%" + EscapeLike(plan.Term) + "%"
		search := make(squirrel.Or, 0, len(plan.Search))
		for _, field := range plan.Search {
			search = append(search, squirrel.Like{"LOWER(" + field.Column + ")": pattern})
		}
		builder = builder.Where(search)
	}

	for _, rule := range rules {
		builder = builder.Where(rule)
	}
	return builder
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the wildcard characters of a LIKE pattern using backslashes
func EscapeLike(raw string) string {
	return likeEscaper.Replace(raw)
}
