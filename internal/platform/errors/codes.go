// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// Form errors
	CodeValidation       Code = "VALIDATION"
	CodeSubmitInProgress Code = "SUBMIT_IN_PROGRESS"

	// Screen errors
	CodeScreenExpired Code = "SCREEN_EXPIRED"

	// Storefront API errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
	CodeStoreRejected    Code = "STORE_REJECTED"
	CodeStoreDecode      Code = "STORE_DECODE"

	// Local storage errors
	CodeStorage Code = "STORAGE"
)

// HTTPStatus maps domain codes to the status the admin console answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeSubmitInProgress:
		return http.StatusConflict
	case CodeScreenExpired:
		return http.StatusGone
	case CodeNotFound:
		return http.StatusNotFound
	case CodeStoreUnavailable, CodeStoreRejected, CodeStoreDecode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the catalog key used to describe the code to operators.
func (c Code) MessageKey() string {
	switch c {
	case CodeUnauthenticated:
		return "notice.login_required"
	case CodeInvalidCredentials:
		return "notice.login_failed"
	case CodeValidation:
		return "error.validation"
	case CodeSubmitInProgress:
		return "notice.submit_in_progress"
	case CodeScreenExpired:
		return "error.screen_expired"
	case CodeNotFound:
		return "error.not_found"
	case CodeStoreUnavailable, CodeStoreRejected, CodeStoreDecode:
		return "error.store_unavailable"
	default:
		return "error.unknown"
	}
}
