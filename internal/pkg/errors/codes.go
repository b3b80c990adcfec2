package errors

import "net/http"

var (
	ErrPageNotFound = New(
		"PAGE_NOT_FOUND",
		"Page not found",
		http.StatusNotFound,
	)

	ErrSegmentNotFound = New(
		"SEGMENT_NOT_FOUND",
		"Path segment does not resolve to a known entity",
		http.StatusNotFound,
	)

	ErrInvalidToggleAction = New(
		"INVALID_TOGGLE_ACTION",
		"Unknown toggle action",
		http.StatusBadRequest,
	)

	ErrToggleNotAllowed = New(
		"TOGGLE_NOT_ALLOWED",
		"Page does not support this toggle",
		http.StatusConflict,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Operator role required",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
