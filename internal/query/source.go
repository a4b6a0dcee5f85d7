package query

import (
	"context"
	"slices"
)

// Source represents a queryable record collection of the persistence layer
type Source[T any] interface {
	// Count returns the amount of records matching the filters, search term and visibility rules of the plan
	Count(ctx context.Context, plan *Plan[T]) (uint64, error)

	// Fetch returns the matching records ordered and windowed as described by the plan
	Fetch(ctx context.Context, plan *Plan[T]) ([]T, error)
}

type sliceSource[T any] struct {
	records []T
}

// Slice provides an in-memory Source over a record collection.
// Records with equal sort keys keep their relative order within the given collection.
func Slice[T any](records []T) Source[T] {
	return &sliceSource[T]{records: records}
}

// Count counts the matching records
func (source *sliceSource[T]) Count(ctx context.Context, plan *Plan[T]) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n uint64
	for _, record := range source.records {
		if plan.Match(record) {
			n++
		}
	}
	return n, nil
}

// Fetch filters, stably sorts and windows the records
func (source *sliceSource[T]) Fetch(ctx context.Context, plan *Plan[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matching := make([]T, 0, len(source.records))
	for _, record := range source.records {
		if plan.Match(record) {
			matching = append(matching, record)
		}
	}
	slices.SortStableFunc(matching, plan.Compare)

	if plan.Offset >= uint64(len(matching)) {
		return []T{}, nil
	}
	end := plan.Offset + plan.Limit
	if end > uint64(len(matching)) {
		end = uint64(len(matching))
	}
	return matching[plan.Offset:end], nil
}
