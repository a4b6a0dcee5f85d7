package query

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Scalar reduces a field or filter value to one of nil, string, int64, float64, bool or time.Time.
// Pointers are dereferenced (nil pointers become nil) and named types are converted to their underlying kind.
// Values of any other kind are returned unchanged.
func Scalar(value any) any {
	if value == nil {
		return nil
	}
	if t, ok := value.(time.Time); ok {
		return t
	}

	ref := reflect.ValueOf(value)
	for ref.Kind() == reflect.Pointer {
		if ref.IsNil() {
			return nil
		}
		ref = ref.Elem()
	}

	switch ref.Kind() {
	case reflect.String:
		return ref.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ref.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(ref.Uint())
	case reflect.Float32, reflect.Float64:
		return ref.Float()
	case reflect.Bool:
		return ref.Bool()
	}
	return ref.Interface()
}

// Compare orders two values after reducing them using Scalar.
// Absent values order before present ones; values of different kinds are compared by their textual
// representation.
func Compare(a, b any) int {
	a, b = Scalar(a), Scalar(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case int64:
		switch y := b.(type) {
		case int64:
			return compareOrdered(x, y)
		case float64:
			return compareOrdered(float64(x), y)
		}
	case float64:
		switch y := b.(type) {
		case float64:
			return compareOrdered(x, y)
		case int64:
			return compareOrdered(x, float64(y))
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
