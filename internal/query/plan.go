package query

import (
	"fmt"
	"strings"
	"time"
)

// Predicate is an active condition bound to the descriptors of the fields it refers to
type Predicate[T any] struct {
	Condition Condition

	// Field is the filtered field (Equal, DayRange) or the private flag (Visibility)
	Field *Field[T]

	// Target is the target field of a Visibility condition
	Target *Field[T]
}

// Plan represents a fully resolved shaping request that is handed to a Source
type Plan[T any] struct {
	Fields *Fields[T]

	// Predicates holds the active conditions; equality and range filters precede visibility rules
	Predicates []Predicate[T]

	// Term is the trimmed and lower-cased free-text term; empty if no search should be performed
	Term string

	// Search holds the fields the term is tested against (empty if Term is empty)
	Search []*Field[T]

	Sort      *Field[T]
	Direction SortDirection

	Offset uint64
	Limit  uint64
}

// NewPlan resolves a request and a set of conditions against a field descriptor table.
// The request is coerced (page and page size >= 1) but not bounded by a maximum page size.
// An error wrapping ErrInvalidParameter is returned if a condition refers to an unknown field.
func NewPlan[T any](fields *Fields[T], conditions []Condition, request *Request) (*Plan[T], error) {
	req := request.coerce()

	plan := &Plan[T]{
		Fields:    fields,
		Sort:      fields.Sort(req.SortBy),
		Direction: req.SortDir,
		Offset:    req.Offset(),
		Limit:     uint64(req.PageSize),
	}

	var filters, rules []Predicate[T]
	for _, cond := range conditions {
		if cond == nil || !cond.Active() {
			continue
		}
		switch typed := cond.(type) {
		case Equal:
			field, err := lookup(fields, typed.Field)
			if err != nil {
				return nil, err
			}
			filters = append(filters, Predicate[T]{Condition: typed, Field: field})
		case DayRange:
			field, err := lookup(fields, typed.Field)
			if err != nil {
				return nil, err
			}
			filters = append(filters, Predicate[T]{Condition: typed, Field: field})
		case Visibility:
			private, err := lookup(fields, typed.PrivateField)
			if err != nil {
				return nil, err
			}
			target, err := lookup(fields, typed.TargetField)
			if err != nil {
				return nil, err
			}
			rules = append(rules, Predicate[T]{Condition: typed, Field: private, Target: target})
		default:
			return nil, fmt.Errorf("%w: unsupported condition %T", ErrInvalidParameter, cond)
		}
	}
	plan.Predicates = append(filters, rules...)

	if term := strings.ToLower(strings.TrimSpace(req.Term)); term != "" {
		plan.Term = term
		plan.Search = fields.Searchable()
	}

	return plan, nil
}

// Match reports whether a record satisfies the filters, the free-text term and the visibility rules of the plan
func (plan *Plan[T]) Match(record T) bool {
	for _, pred := range plan.Predicates {
		if _, ok := pred.Condition.(Visibility); ok {
			continue
		}
		if !pred.match(record) {
			return false
		}
	}

	if plan.Term != "" && !plan.matchTerm(record) {
		return false
	}

	for _, pred := range plan.Predicates {
		if _, ok := pred.Condition.(Visibility); !ok {
			continue
		}
		if !pred.match(record) {
			return false
		}
	}

	return true
}

// Compare orders two records according to the resolved sort field and direction
func (plan *Plan[T]) Compare(a, b T) int {
	res := Compare(plan.Sort.Value(a), plan.Sort.Value(b))
	if plan.Direction == Descending {
		return -res
	}
	return res
}

func (plan *Plan[T]) matchTerm(record T) bool {
	for _, field := range plan.Search {
		str, ok := Scalar(field.Value(record)).(string)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(str), plan.Term) {
			return true
		}
	}
	return false
}

func (pred Predicate[T]) match(record T) bool {
	switch cond := pred.Condition.(type) {
	case Equal:
		value := Scalar(pred.Field.Value(record))
		return value != nil && Compare(value, cond.Value) == 0
	case DayRange:
		value, ok := Scalar(pred.Field.Value(record)).(time.Time)
		if !ok {
			return false
		}
		if lower, ok := cond.Lower(); ok && value.Before(lower) {
			return false
		}
		if upper, ok := cond.Upper(); ok && !value.Before(upper) {
			return false
		}
		return true
	case Visibility:
		if private, _ := Scalar(pred.Field.Value(record)).(bool); !private {
			return true
		}
		target := Scalar(pred.Target.Value(record))
		return target != nil && Compare(target, *cond.ViewerID) == 0
	}
	return false
}

func lookup[T any](fields *Fields[T], name string) (*Field[T], error) {
	field, ok := fields.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidParameter, name)
	}
	return field, nil
}
