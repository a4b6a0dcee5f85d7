package query

import "context"

// Shape runs the shaping pipeline of a listing call against a source: filters, free-text search and visibility
// rules are applied conjunctively, the matching records are counted, stably ordered by the resolved sort field and
// finally windowed to the requested page.
//
// Malformed pagination and sort parameters never cause an error; they are normalized instead.
// Errors of the source wrap ErrStorageUnavailable or, if ctx was cancelled, ErrCancelled. A cancelled call never
// returns a page.
func Shape[T any](ctx context.Context, source Source[T], fields *Fields[T], conditions []Condition, request *Request) (*Page[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, StorageError(ctx, err)
	}

	req := request.coerce()
	plan, err := NewPlan(fields, conditions, req)
	if err != nil {
		return nil, err
	}

	total, err := source.Count(ctx, plan)
	if err != nil {
		return nil, StorageError(ctx, err)
	}

	items := []T{}
	if total > plan.Offset {
		items, err = source.Fetch(ctx, plan)
		if err != nil {
			return nil, StorageError(ctx, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, StorageError(ctx, err)
	}
	return Envelope(items, req.Page, req.PageSize, total), nil
}
