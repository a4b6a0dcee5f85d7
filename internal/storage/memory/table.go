package memory

import (
	"context"
	"slices"
	"sync/atomic"

	"github.com/cfelipe-app/Route/internal/query"
	"github.com/hashicorp/go-memdb"
)

// table stores records of type R in a single go-memdb table indexed by their int64 'ID' field.
// Callers only ever receive copies of the stored records.
type table[R any] struct {
	db     *memdb.MemDB
	name   string
	fields *query.Fields[*R]
	lastID atomic.Int64

	// cascade is run within the deleting transaction before a record is removed
	cascade func(txn *memdb.Txn, id int64) error
}

func newTable[R any](db *memdb.MemDB, name string, fields *query.Fields[*R]) *table[R] {
	return &table[R]{
		db:     db,
		name:   name,
		fields: fields,
	}
}

// GetByID retrieves a record by its ID
func (tbl *table[R]) GetByID(_ context.Context, id int64) (*R, error) {
	txn := tbl.db.Txn(false)
	return tbl.first(txn, id)
}

// Delete deletes a record by its ID along with the records depending on it
func (tbl *table[R]) Delete(_ context.Context, id int64) error {
	txn := tbl.db.Txn(true)
	defer txn.Abort()

	obj, err := txn.First(tbl.name, "id", id)
	if err != nil {
		return err
	}
	if obj == nil {
		return nil
	}
	if tbl.cascade != nil {
		if err := tbl.cascade(txn, id); err != nil {
			return err
		}
	}
	if err := txn.Delete(tbl.name, obj); err != nil {
		return err
	}

	txn.Commit()
	return nil
}

// paged shapes a consistent snapshot of the table.
// The snapshot is ordered by ID so records sharing a sort value keep their insertion order.
func (tbl *table[R]) paged(ctx context.Context, conditions []query.Condition, request *query.Request) (*query.Page[*R], error) {
	records, err := tbl.snapshot()
	if err != nil {
		return nil, err
	}
	return query.Shape(ctx, query.Slice(records), tbl.fields, conditions, request)
}

func (tbl *table[R]) snapshot() ([]*R, error) {
	txn := tbl.db.Txn(false)
	it, err := txn.Get(tbl.name, "id")
	if err != nil {
		return nil, err
	}

	records := []*R{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		records = append(records, clone(obj.(*R)))
	}

	key := tbl.fields.Key()
	slices.SortFunc(records, func(a, b *R) int {
		return query.Compare(key.Value(a), key.Value(b))
	})
	return records, nil
}

func (tbl *table[R]) first(txn *memdb.Txn, id int64) (*R, error) {
	obj, err := txn.First(tbl.name, "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return clone(obj.(*R)), nil
}

// nextID reserves the ID of a new record
func (tbl *table[R]) nextID() int64 {
	return tbl.lastID.Add(1)
}

// insert inserts (or replaces) a copy of a record
func (tbl *table[R]) insert(txn *memdb.Txn, record *R) error {
	return txn.Insert(tbl.name, clone(record))
}

// create inserts a new record within its own transaction
func (tbl *table[R]) create(record *R) error {
	txn := tbl.db.Txn(true)
	defer txn.Abort()
	if err := tbl.insert(txn, record); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func clone[R any](record *R) *R {
	cpy := *record
	return &cpy
}
