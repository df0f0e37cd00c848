// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the ratings API.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.
  - Operation failures: Create/Update/Delete/Attach each have their own kind,
    mirroring the JSON error the endpoints have always returned.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the ratings API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional detail string.
//
// # Security
//
// The Cause field is for server-side logging only. Detail is sent to the
// client and is only populated by the update and delete failure kinds, which
// have always echoed the store error text.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "UPDATE_FAILED").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging.
	Cause error `json:"-"`
	// Detail is an optional client-visible elaboration.
	Detail string `json:"details,omitempty"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Movie") // Returns "Movie not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// BadRequest creates a 400 [AppError].
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// # Operation Failures (5xx)

// CreationFailed creates a 500 [AppError] for a failed insert.
// The cause is logged but not echoed.
func CreationFailed(resource string, cause error) *AppError {
	return &AppError{
		Code:       "CREATION_FAILED",
		Message:    "Failed to create " + resource,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// UpdateFailed creates a 500 [AppError] carrying the store error text.
func UpdateFailed(resource string, cause error) *AppError {
	return &AppError{
		Code:       "UPDATE_FAILED",
		Message:    "Failed to update " + resource,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
		Detail:     detailOf(cause),
	}
}

// DeleteFailed creates a 500 [AppError] carrying the store error text.
func DeleteFailed(resource string, cause error) *AppError {
	return &AppError{
		Code:       "DELETE_FAILED",
		Message:    "Failed to delete " + resource,
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
		Detail:     detailOf(cause),
	}
}

// AttachFailed creates a 500 [AppError] for a failed episode attach.
// It deliberately does not say which step failed.
func AttachFailed(cause error) *AppError {
	return &AppError{
		Code:       "ATTACH_FAILED",
		Message:    "Failed to add episode",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// UploadFailed creates a 500 [AppError] for an asset that could not be written.
func UploadFailed(cause error) *AppError {
	return &AppError{
		Code:       "UPLOAD_FAILED",
		Message:    "Failed to store upload",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

func detailOf(cause error) string {
	if cause == nil {
		return "Unknown error"
	}
	return cause.Error()
}
