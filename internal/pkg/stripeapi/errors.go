package stripeapi

import "errors"

// ErrorType mirrors the provider's error type discriminator.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
)

const codeResourceMissing = "resource_missing"

// Error is the provider error decoded at the API boundary. Callers classify
// failures through the predicates below rather than inspecting message text.
type Error struct {
	Type ErrorType
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return string(e.Type)
}

// IsInvalidRequest reports whether err is a client-request error, any code.
func IsInvalidRequest(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeInvalidRequest
}

// IsResourceMissing reports whether err says the referenced remote resource
// does not exist. Retrieve-style operations map this to an absent result.
func IsResourceMissing(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		apiErr.Type == ErrorTypeInvalidRequest &&
		apiErr.Code == codeResourceMissing
}
