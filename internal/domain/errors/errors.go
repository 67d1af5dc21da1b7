package errors

import (
	"net/http"

	"kioskdash/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so sentinels
// survive WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is invalid or expired",
		"",
	)

	ErrSuperAdminRequired = NewBaseError(
		http.StatusForbidden,
		"SUPER_ADMIN_REQUIRED",
		"Super admin access required",
		"",
	)

	ErrNotImpersonating = NewBaseError(
		http.StatusBadRequest,
		"NOT_IMPERSONATING",
		"Session is not impersonating an organization",
		"",
	)

	ErrOrganizationOutOfScope = NewBaseError(
		http.StatusForbidden,
		"ORGANIZATION_OUT_OF_SCOPE",
		"Organization does not belong to this merchant",
		"",
	)

	// Connection-related errors
	ErrOrganizationNotFound = NewBaseError(
		http.StatusNotFound,
		"ORGANIZATION_NOT_FOUND",
		"Organization not found",
		"",
	)

	ErrConnectionNotFound = NewBaseError(
		http.StatusNotFound,
		"CONNECTION_NOT_FOUND",
		"No active payment provider connection for this organization",
		"",
	)

	// OAuth-related errors
	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_FAILED",
		"Payment provider authorization failed",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Authorization state is invalid or expired",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_INVALID",
		"Invalid authorization code",
		"",
	)

	// Donation-related errors
	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"Donation not found",
		"",
	)

	ErrLegacyDonationReadOnly = NewBaseError(
		http.StatusBadRequest,
		"LEGACY_DONATION_READ_ONLY",
		"Legacy receipt rows cannot be edited",
		"",
	)

	// Donor-related errors
	ErrDonorNotFound = NewBaseError(
		http.StatusNotFound,
		"DONOR_NOT_FOUND",
		"Donor not found",
		"",
	)

	ErrDonorIdentifierInvalid = NewBaseError(
		http.StatusBadRequest,
		"DONOR_IDENTIFIER_INVALID",
		"Donor identifier is invalid",
		"",
	)

	ErrNothingToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_TO_UPDATE",
		"At least one of donor_name or donor_email is required",
		"",
	)

	ErrMergeRequiresTwoDonors = NewBaseError(
		http.StatusBadRequest,
		"MERGE_REQUIRES_TWO_DONORS",
		"At least two donors are required to merge",
		"",
	)

	ErrMergePrimaryNameRequired = NewBaseError(
		http.StatusBadRequest,
		"MERGE_PRIMARY_NAME_REQUIRED",
		"The primary donor must have a name",
		"",
	)

	ErrNoMatchingDonations = NewBaseError(
		http.StatusNotFound,
		"NO_MATCHING_DONATIONS",
		"No donations matched the donor identity",
		"",
	)

	// Change history errors
	ErrChangeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHANGE_NOT_FOUND",
		"Change record not found",
		"",
	)

	ErrChangeAlreadyReverted = NewBaseError(
		http.StatusConflict,
		"CHANGE_ALREADY_REVERTED",
		"Change has already been reverted",
		"",
	)

	ErrRevertTargetNotFound = NewBaseError(
		http.StatusNotFound,
		"REVERT_TARGET_NOT_FOUND",
		"No donations match the state recorded by this change",
		"",
	)

	// Report-related errors
	ErrInvalidPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD",
		"Unknown reporting period",
		"",
	)

	ErrInvalidChartType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CHART_TYPE",
		"Unknown chart type",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"A custom period requires start_date before end_date",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
