package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("kafka write failed")
	wrapped := Wrap(originalErr, CodeInternal, "internal error", http.StatusInternalServerError)

	if wrapped.Err != originalErr {
		t.Errorf("expected wrapped error to contain original error")
	}
	if !errors.Is(wrapped, originalErr) {
		t.Errorf("expected errors.Is to unwrap to the original error")
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "booking not found",
			},
			expected: "NOT_FOUND: booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeInternal,
				Message: "internal error",
				Err:     errors.New("publish failed"),
			},
			expected: "INTERNAL_ERROR: internal error (caused by: publish failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"already booked", AlreadyBooked("b1"), CodeAlreadyBooked, http.StatusConflict},
		{"overlapping", OverlappingBooking("gophercon"), CodeOverlapping, http.StatusConflict},
		{"already canceled", AlreadyCanceled("b1"), CodeAlreadyCanceled, http.StatusConflict},
		{"already confirmed", AlreadyConfirmed("b1"), CodeAlreadyConfirmed, http.StatusConflict},
		{"not eligible", NotEligible(), CodeNotEligible, http.StatusNotFound},
		{"no slots", NoSlotsAvailable("gophercon"), CodeNoSlotsAvailable, http.StatusConflict},
		{"duplicate name", DuplicateName("gophercon"), CodeDuplicateName, http.StatusConflict},
		{"duplicate user", DuplicateUser("alice"), CodeDuplicateUser, http.StatusConflict},
		{"invalid window", InvalidWindow("start after end"), CodeInvalidWindow, http.StatusBadRequest},
		{"invalid capacity", InvalidCapacity("capacity must be positive"), CodeInvalidCapacity, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.httpStatus {
				t.Errorf("expected status %d, got %d", tt.httpStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(NotEligible(), CodeNotEligible) {
		t.Error("expected IsCode to match")
	}
	if IsCode(errors.New("plain"), CodeNotEligible) {
		t.Error("expected plain error not to match")
	}
}

func TestAsAppError(t *testing.T) {
	plain := errors.New("boom")
	appErr := AsAppError(plain)
	if appErr.Code != CodeInternal {
		t.Errorf("expected %s for plain errors, got %s", CodeInternal, appErr.Code)
	}

	orig := NotFound("Booking")
	if AsAppError(orig) != orig {
		t.Error("expected AsAppError to pass AppError through unchanged")
	}
}
