package validation

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cfelipe-app/Route/internal/api/schema"
)

// DateLayout is the layout of date-only query parameters; RFC 3339 timestamps are accepted as well
const DateLayout = "2006-01-02"

var (
	errQueryParameterInvalidType = func(name, value, expectedType string) *schema.Error {
		return &schema.Error{
			Type:    "validation.query.parameter.invalidType",
			Message: fmt.Sprintf("The query parameter '%s' ('%s') could not be assigned to the required type (%s).", name, value, expectedType),
			Details: map[string]interface{}{
				"parameter":     name,
				"value":         value,
				"expected_type": expectedType,
			},
		}
	}
)

// QueryID extracts an optional ID filter out of the query parameters of the given request.
// nil is returned if the parameter is absent.
func QueryID(request *http.Request, key string) (*int64, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, errQueryParameterInvalidType(key, value, "number")
	}
	return &parsed, nil
}

// QueryBool extracts an optional boolean filter out of the query parameters of the given request.
// nil is returned if the parameter is absent.
func QueryBool(request *http.Request, key string) (*bool, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errQueryParameterInvalidType(key, value, "boolean")
	}
	return &parsed, nil
}

// QueryDate extracts an optional date filter (either 'YYYY-MM-DD' or an RFC 3339 timestamp) out of the query
// parameters of the given request. nil is returned if the parameter is absent.
func QueryDate(request *http.Request, key string) (*time.Time, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, errQueryParameterInvalidType(key, value, "date")
		}
	}
	return &parsed, nil
}

// QueryEnum extracts an optional enum filter out of the query parameters of the given request.
// nil is returned if the parameter is absent.
func QueryEnum[T ~string](request *http.Request, key string, parse func(string) (T, error)) (*T, *schema.Error) {
	value := strings.TrimSpace(request.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}

	parsed, err := parse(value)
	if err != nil {
		return nil, errQueryParameterInvalidType(key, value, "enum")
	}
	return &parsed, nil
}

// Collector gathers the validation errors of several parameters
type Collector []*schema.Error

// Add records a validation error if it is not nil
func (collector *Collector) Add(err *schema.Error) {
	if err != nil {
		*collector = append(*collector, err)
	}
}

// ID extracts an optional ID filter and records its validation error
func (collector *Collector) ID(request *http.Request, key string) *int64 {
	val, err := QueryID(request, key)
	collector.Add(err)
	return val
}

// Bool extracts an optional boolean filter and records its validation error
func (collector *Collector) Bool(request *http.Request, key string) *bool {
	val, err := QueryBool(request, key)
	collector.Add(err)
	return val
}

// Date extracts an optional date filter and records its validation error
func (collector *Collector) Date(request *http.Request, key string) *time.Time {
	val, err := QueryDate(request, key)
	collector.Add(err)
	return val
}
