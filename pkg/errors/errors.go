package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternal         = "INTERNAL_ERROR"
	CodeAlreadyBooked    = "ALREADY_BOOKED"
	CodeOverlapping      = "OVERLAPPING_BOOKING"
	CodeAlreadyCanceled  = "ALREADY_CANCELED"
	CodeAlreadyConfirmed = "ALREADY_CONFIRMED"
	CodeNotEligible      = "NOT_ELIGIBLE"
	CodeNoSlotsAvailable = "NO_SLOTS_AVAILABLE"
	CodeDuplicateName    = "DUPLICATE_NAME"
	CodeDuplicateUser    = "DUPLICATE_USER"
	CodeInvalidWindow    = "INVALID_WINDOW"
	CodeInvalidCapacity  = "INVALID_CAPACITY"
)

// AppError is the typed error carried across every service boundary. Nothing
// in the core is fatal; callers decide what a given code means for them.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NotFoundWithID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AlreadyBooked rejects a second booking for a conference the user already
// holds a confirmed seat in. The existing booking id rides in the details.
func AlreadyBooked(bookingID string) *AppError {
	return &AppError{
		Code:       CodeAlreadyBooked,
		Message:    "user already has an active booking for this conference",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"booking_id": bookingID,
		},
	}
}

func OverlappingBooking(conferenceID string) *AppError {
	return &AppError{
		Code:       CodeOverlapping,
		Message:    "user has another conference booked in the same time slot",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"conflicting_conference": conferenceID,
		},
	}
}

func AlreadyCanceled(bookingID string) *AppError {
	return &AppError{
		Code:       CodeAlreadyCanceled,
		Message:    "booking already canceled",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"booking_id": bookingID,
		},
	}
}

func AlreadyConfirmed(bookingID string) *AppError {
	return &AppError{
		Code:       CodeAlreadyConfirmed,
		Message:    "booking already confirmed",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"booking_id": bookingID,
		},
	}
}

func NotEligible() *AppError {
	return &AppError{
		Code:       CodeNotEligible,
		Message:    "booking is not awaiting confirmation",
		HTTPStatus: http.StatusNotFound,
	}
}

func NoSlotsAvailable(conferenceID string) *AppError {
	return &AppError{
		Code:       CodeNoSlotsAvailable,
		Message:    "no slots available",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"conference_id": conferenceID,
		},
	}
}

func DuplicateName(name string) *AppError {
	return &AppError{
		Code:       CodeDuplicateName,
		Message:    "conference name must be unique",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"name": name,
		},
	}
}

func DuplicateUser(userID string) *AppError {
	return &AppError{
		Code:       CodeDuplicateUser,
		Message:    "user ID must be unique",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"user_id": userID,
		},
	}
}

func InvalidWindow(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidWindow,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func InvalidCapacity(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidCapacity,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
