package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured error details (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// newBaseError creates a new base error
func newBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code, so a sentinel
// still matches after WithDetails has produced a copy of it.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// PairDetails identifies the customer pair an error refers to.
type PairDetails struct {
	CustomerAID uuid.UUID `json:"customer_a_id"`
	CustomerBID uuid.UUID `json:"customer_b_id"`
}

// Predefined error types
var (
	// Customer-related errors
	ErrCustomerNotFound = newBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"找不到該顧客",
		nil,
	)

	// Dismissal-related errors
	ErrAlreadyDismissed = newBaseError(
		http.StatusConflict,
		"ALREADY_DISMISSED",
		"此組顧客已被標記為非重複",
		nil,
	)

	ErrDismissalNotFound = newBaseError(
		http.StatusNotFound,
		"DISMISSAL_NOT_FOUND",
		"找不到此組顧客的非重複標記",
		nil,
	)

	// Merge-related errors
	ErrMergeNotFound = newBaseError(
		http.StatusNotFound,
		"MERGE_NOT_FOUND",
		"找不到該合併紀錄",
		nil,
	)

	ErrAlreadyUndone = newBaseError(
		http.StatusConflict,
		"ALREADY_UNDONE",
		"該合併已被復原",
		nil,
	)

	ErrMergeUndoBlocked = newBaseError(
		http.StatusConflict,
		"MERGE_UNDO_BLOCKED",
		"之後仍有尚未復原的合併，請先復原較新的合併",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = newBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		nil,
	)

	// Authentication-related errors
	ErrUnauthorized = newBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"未提供有效的存取權杖",
		nil,
	)

	// General errors
	ErrInternalError = newBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		nil,
	)
)

// InvalidMergeReason describes why a pair of customers cannot be merged.
type InvalidMergeReason string

const (
	ReasonSelfMerge       InvalidMergeReason = "self_merge"
	ReasonCrossTenant     InvalidMergeReason = "cross_tenant"
	ReasonNotFound        InvalidMergeReason = "customer_not_found"
	ReasonPrimaryMerged   InvalidMergeReason = "primary_already_merged"
	ReasonSecondaryMerged InvalidMergeReason = "secondary_already_merged"
	// ReasonSecondaryAbsorbed means other customers point at the secondary, so
	// merging it away would leave them with a chained merged-into reference.
	ReasonSecondaryAbsorbed InvalidMergeReason = "secondary_has_merged_customers"
)

// InvalidMergeTargetError is returned when a merge, preview or dismissal names
// customers that cannot take part in it.
type InvalidMergeTargetError struct {
	Reason      InvalidMergeReason `json:"reason"`
	PrimaryID   uuid.UUID          `json:"primary_id"`
	SecondaryID uuid.UUID          `json:"secondary_id"`
	// CustomerID is the offending customer when the reason names only one side.
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
}

// NewInvalidMergeTargetError creates an InvalidMergeTargetError for the pair.
func NewInvalidMergeTargetError(reason InvalidMergeReason, primaryID, secondaryID uuid.UUID) *InvalidMergeTargetError {
	return &InvalidMergeTargetError{
		Reason:      reason,
		PrimaryID:   primaryID,
		SecondaryID: secondaryID,
	}
}

// ForCustomer records which customer of the pair caused the error.
func (e *InvalidMergeTargetError) ForCustomer(id uuid.UUID) *InvalidMergeTargetError {
	e.CustomerID = &id

	return e
}

// Error implements the error interface
func (e *InvalidMergeTargetError) Error() string {
	return fmt.Sprintf("invalid merge target (%s): primary=%s secondary=%s", e.Reason, e.PrimaryID, e.SecondaryID)
}

// HTTPCode returns the HTTP status code
func (e *InvalidMergeTargetError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *InvalidMergeTargetError) ErrorCode() string {
	return "INVALID_MERGE_TARGET"
}

// Message returns the user-friendly error message
func (e *InvalidMergeTargetError) Message() string {
	switch e.Reason {
	case ReasonSelfMerge:
		return "無法將顧客與自己合併"
	case ReasonCrossTenant:
		return "無法合併不同租戶的顧客"
	case ReasonNotFound:
		return "找不到要合併的顧客"
	case ReasonPrimaryMerged, ReasonSecondaryMerged:
		return "顧客已被合併至其他顧客"
	case ReasonSecondaryAbsorbed:
		return "次要顧客已合併過其他顧客，請改以其作為主要顧客"
	default:
		return "無效的合併對象"
	}
}

// Details returns the reason and the offending ids
func (e *InvalidMergeTargetError) Details() any {
	return e
}

// UnresolvedFieldConflictError is returned when a merge lacks a resolution for
// one or more fields that require an operator decision.
type UnresolvedFieldConflictError struct {
	Fields []string `json:"fields"`
}

// NewUnresolvedFieldConflictError creates an UnresolvedFieldConflictError naming the fields.
func NewUnresolvedFieldConflictError(fields []string) *UnresolvedFieldConflictError {
	return &UnresolvedFieldConflictError{Fields: fields}
}

// Error implements the error interface
func (e *UnresolvedFieldConflictError) Error() string {
	return "unresolved field conflict: " + strings.Join(e.Fields, ", ")
}

// HTTPCode returns the HTTP status code
func (e *UnresolvedFieldConflictError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *UnresolvedFieldConflictError) ErrorCode() string {
	return "UNRESOLVED_FIELD_CONFLICT"
}

// Message returns the user-friendly error message
func (e *UnresolvedFieldConflictError) Message() string {
	return "請為所有衝突欄位選擇要保留的值"
}

// Details returns the unresolved field names
func (e *UnresolvedFieldConflictError) Details() any {
	return e
}

// StorageFailureError represents a backing-store failure, implementing the AppError interface.
// The whole operation has been rolled back and may be retried by the caller.
type StorageFailureError struct {
	err     error
	details string
}

// NewStorageFailureError creates a storage-related error
func NewStorageFailureError(err error, details string) AppError {
	return &StorageFailureError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageFailureError) Error() string {
	return errors.Wrap(e.err, "storage failure: "+e.details).Error()
}

// Unwrap returns the underlying storage error
func (e *StorageFailureError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageFailureError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageFailureError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *StorageFailureError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *StorageFailureError) Details() any {
	return e.details
}
