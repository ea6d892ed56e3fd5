package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct is returned when product fields fail validation.
	ErrInvalidProduct = errors.New("invalid product data")
	// ErrCartAddFailed is returned when an item cannot be added to the cart.
	// The cause (missing user or missing product) is deliberately not exposed.
	ErrCartAddFailed = errors.New("failed to add to the cart")
	// ErrCartRemoveFailed is returned when no matching cart item exists.
	ErrCartRemoveFailed = errors.New("failed to remove item from the cart")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrInvalidProduct:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRODUCT")
	case ErrCartAddFailed:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_ADD_FAILED")
	case ErrCartRemoveFailed:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CART_REMOVE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
