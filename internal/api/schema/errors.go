package schema

var emptyMap = map[string]interface{}{}

var (
	ErrInternal = &Error{
		Type:    "generic.internal",
		Message: "An internal error occurred.",
		Details: emptyMap,
	}
	ErrNotFound = &Error{
		Type:    "generic.notFound",
		Message: "Resource not found.",
		Details: emptyMap,
	}
	ErrMethodNotAllowed = &Error{
		Type:    "generic.methodNotAllowed",
		Message: "Method not allowed.",
		Details: emptyMap,
	}
	ErrStorageUnavailable = &Error{
		Type:    "generic.storageUnavailable",
		Message: "The underlying storage could not be reached.",
		Details: emptyMap,
	}
	ErrCancelled = &Error{
		Type:    "generic.cancelled",
		Message: "The request was cancelled before it could be completed.",
		Details: emptyMap,
	}
	ErrDuplicate = &Error{
		Type:    "generic.duplicate",
		Message: "A resource with the same unique attributes already exists.",
		Details: emptyMap,
	}
)

// ErrorResponse represents the response structure sent by the API whenever errors occurred
type ErrorResponse struct {
	Status int      `json:"status"`
	Errors []*Error `json:"errors"`
}

// Error represents a single error present in the ErrorResponse
type Error struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}
