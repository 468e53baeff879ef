package shared

import (
	"errors"
	"fmt"
)

// Kind identifies a domain failure. The set is closed: every kind added here
// must also be mapped to an HTTP status in the interfaces layer, and the
// mapping switch is exhaustive so the compiler flags a forgotten case.
type Kind string

const (
	// KindResourceNotFound is returned when a franchise id does not resolve
	KindResourceNotFound Kind = "RESOURCE_NOT_FOUND"
	// KindBranchNotFound covers both an absent branch document and a branch
	// id that is not referenced by the franchise under operation
	KindBranchNotFound Kind = "BRANCH_NOT_FOUND"
	// KindProductNotFound covers an absent product document and a product id
	// not referenced by the branch under operation
	KindProductNotFound Kind = "PRODUCT_NOT_FOUND"
	// KindProductAlreadyExists is returned on a duplicate attach or a rename
	// to a name another product already holds
	KindProductAlreadyExists Kind = "PRODUCT_ALREADY_EXISTS"
	// KindBranchNameAlreadyUpToDate is returned when a branch rename targets
	// the current name (case-insensitive)
	KindBranchNameAlreadyUpToDate Kind = "BRANCH_NAME_ALREADY_UP_TO_DATE"
	// KindProductNameAlreadyUpToDate is the product rename equivalent
	KindProductNameAlreadyUpToDate Kind = "PRODUCT_NAME_ALREADY_UP_TO_DATE"
	// KindDuplicateKey is a store-level unique index violation, the backstop
	// behind the existence-check fast path
	KindDuplicateKey Kind = "DUPLICATE_KEY"
	// KindVersionConflict is an optimistic-lock failure on a stale save
	KindVersionConflict Kind = "VERSION_CONFLICT"
	// KindValidation is malformed input: blank names, negative stock
	KindValidation Kind = "VALIDATION_FAILURE"
	// KindInternal is any failure not classified above
	KindInternal Kind = "INTERNAL"
)

// DomainError is a tagged domain failure. It is the only error type the
// application layer produces deliberately; everything else surfaces as
// KindInternal at the HTTP boundary.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a domain error with the given kind and message.
func NewDomainError(kind Kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// NewDomainErrorf creates a domain error with a formatted message.
func NewDomainErrorf(kind Kind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from an error chain. Non-domain errors
// report KindInternal.
func KindOf(err error) Kind {
	var derr *DomainError
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Common store-level errors
var (
	ErrNotFound        = NewDomainError(KindResourceNotFound, "Resource not found")
	ErrDuplicateKey    = NewDomainError(KindDuplicateKey, "Unique index violation")
	ErrVersionConflict = NewDomainError(KindVersionConflict, "Document was modified by another process")
)
