package query

import (
	"fmt"
	"strings"
)

// Field describes a single externally exposed field of a record type.
// Only fields registered in a Fields table are reachable from client input.
type Field[T any] struct {
	// Name is the name clients use to refer to the field (i.e. in the 'sortBy' parameter)
	Name string

	// Column is the storage column backing the field
	Column string

	// Value extracts the field value out of a record.
	// Pointer values are dereferenced; nil pointers are treated as absent values.
	Value func(record T) any

	// Searchable defines whether the free-text term is tested against this field
	Searchable bool

	// Sortable defines whether clients may order by this field
	Sortable bool
}

// Fields is the allow-listed field descriptor table of a record type
type Fields[T any] struct {
	byName      map[string]*Field[T]
	ordered     []*Field[T]
	searchable  []*Field[T]
	key         *Field[T]
	defaultSort *Field[T]
}

// NewFields builds a new field descriptor table.
// key names the field uniquely identifying a record and defaultSort the sortable field used whenever a client
// requests an unknown sort field. NewFields panics if either of them is not part of the given fields.
func NewFields[T any](key, defaultSort string, fields ...*Field[T]) *Fields[T] {
	table := &Fields[T]{
		byName: make(map[string]*Field[T], len(fields)),
	}
	for _, field := range fields {
		name := strings.ToLower(field.Name)
		if _, ok := table.byName[name]; ok {
			panic(fmt.Sprintf("query: duplicate field %q", field.Name))
		}
		table.byName[name] = field
		table.ordered = append(table.ordered, field)
		if field.Searchable {
			table.searchable = append(table.searchable, field)
		}
	}

	keyField, ok := table.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("query: unknown key field %q", key))
	}
	table.key = keyField

	sortField, ok := table.Lookup(defaultSort)
	if !ok || !sortField.Sortable {
		panic(fmt.Sprintf("query: default sort field %q is unknown or not sortable", defaultSort))
	}
	table.defaultSort = sortField

	return table
}

// Lookup looks up a field by its (case-insensitive) name
func (table *Fields[T]) Lookup(name string) (*Field[T], bool) {
	field, ok := table.byName[strings.ToLower(strings.TrimSpace(name))]
	return field, ok
}

// Sort resolves the field to order by.
// Unknown or non-sortable names silently fall back to the default sort field.
func (table *Fields[T]) Sort(name string) *Field[T] {
	field, ok := table.Lookup(name)
	if !ok || !field.Sortable {
		return table.defaultSort
	}
	return field
}

// Key returns the field uniquely identifying a record
func (table *Fields[T]) Key() *Field[T] {
	return table.key
}

// DefaultSort returns the field used when no valid sort field was requested
func (table *Fields[T]) DefaultSort() *Field[T] {
	return table.defaultSort
}

// Searchable returns the fields the free-text term is tested against
func (table *Fields[T]) Searchable() []*Field[T] {
	return table.searchable
}

// All returns every registered field in registration order
func (table *Fields[T]) All() []*Field[T] {
	return table.ordered
}
