package weave

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Contract violations
	ErrMsgSegmentsMissing   = "literal segments missing from call"
	ErrMsgExtraSubstitution = "substitution has no matching slot"

	// Rendering
	ErrMsgUnsupportedValue = "unsupported value in sequence"
	ErrMsgMaxDepthExceeded = "maximum nesting depth exceeded"
	ErrMsgWriteFailed      = "failed to write rendered output"

	// Configuration and documents
	ErrMsgInvalidStrategy = "invalid unsupported-value strategy"
	ErrMsgInvalidMaxDepth = "max depth cannot be negative"
	ErrMsgConfigDecode    = "failed to decode config"
	ErrMsgConfigRead      = "failed to read config file"
	ErrMsgDocumentDecode  = "failed to decode document"
)

// Error code constants for categorization
const (
	ErrCodeContract    = "WEAVE_CONTRACT"
	ErrCodeUnsupported = "WEAVE_UNSUPPORTED"
	ErrCodeDepth       = "WEAVE_DEPTH"
	ErrCodeConfig      = "WEAVE_CONFIG"
	ErrCodeIO          = "WEAVE_IO"
)

// NewSegmentsMissingError reports a call without literal segments
func NewSegmentsMissingError() error {
	return cuserr.NewValidationError(ErrCodeContract, ErrMsgSegmentsMissing).
		WithMetadata(MetaKeyErrorKind, ErrorKindContractViolation).
		WithMetadata(MetaKeyReason, ErrMsgSegmentsMissing)
}

// NewExtraSubstitutionError reports a present substitution past the last slot
func NewExtraSubstitutionError(slot, segmentCount int) error {
	return cuserr.NewValidationError(ErrCodeContract, ErrMsgExtraSubstitution).
		WithMetadata(MetaKeyErrorKind, ErrorKindContractViolation).
		WithMetadata(MetaKeyReason, ErrMsgExtraSubstitution).
		WithMetadata(MetaKeySlot, strconv.Itoa(slot)).
		WithMetadata(MetaKeySegmentCount, strconv.Itoa(segmentCount))
}

// NewUnsupportedValueError reports a value the renderer cannot stringify
func NewUnsupportedValueError(valueType string, depth int) error {
	return cuserr.NewValidationError(ErrCodeUnsupported, ErrMsgUnsupportedValue).
		WithMetadata(MetaKeyErrorKind, ErrorKindUnsupportedValue).
		WithMetadata(MetaKeyValueType, valueType).
		WithMetadata(MetaKeyCurrentDepth, strconv.Itoa(depth))
}

// NewMaxDepthError reports nesting beyond the configured limit
func NewMaxDepthError(depth, maxDepth int) error {
	return cuserr.NewValidationError(ErrCodeDepth, ErrMsgMaxDepthExceeded).
		WithMetadata(MetaKeyErrorKind, ErrorKindRecursionLimit).
		WithMetadata(MetaKeyCurrentDepth, strconv.Itoa(depth)).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
}

// NewWriteError wraps a failure of the output writer
func NewWriteError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, ErrMsgWriteFailed).
		WithMetadata(MetaKeyErrorKind, ErrorKindWrite)
}

// NewInvalidStrategyError reports an unknown strategy name
func NewInvalidStrategyError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidStrategy).
		WithMetadata(MetaKeyErrorKind, ErrorKindConfig).
		WithMetadata(MetaKeyStrategy, name)
}

// NewInvalidMaxDepthError reports a negative depth limit
func NewInvalidMaxDepthError(depth int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidMaxDepth).
		WithMetadata(MetaKeyErrorKind, ErrorKindConfig).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(depth))
}

// NewConfigError wraps a config read or decode failure
func NewConfigError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, msg).
		WithMetadata(MetaKeyErrorKind, ErrorKindConfig).
		WithMetadata(MetaKeyPath, path)
}

// NewDocumentError wraps a document decode failure
func NewDocumentError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgDocumentDecode).
		WithMetadata(MetaKeyErrorKind, ErrorKindConfig)
}

// errorKind extracts the kind recorded on a weave error
func errorKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, _ := customErr.GetMetadata(MetaKeyErrorKind)
	return kind
}

// IsContractViolation reports whether err was caused by a malformed call
func IsContractViolation(err error) bool {
	return errorKind(err) == ErrorKindContractViolation
}

// IsUnsupportedValue reports whether err was raised by UnsupportedStrategyThrow
func IsUnsupportedValue(err error) bool {
	return errorKind(err) == ErrorKindUnsupportedValue
}

// IsRecursionLimit reports whether err was caused by the depth limit
func IsRecursionLimit(err error) bool {
	return errorKind(err) == ErrorKindRecursionLimit
}
