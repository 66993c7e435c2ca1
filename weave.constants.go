package weave

// Kind name constants for debugging and explain output
const (
	KindNameText        = "text"
	KindNameNumber      = "number"
	KindNameSequence    = "sequence"
	KindNameUnsupported = "unsupported"
	KindNameAbsent      = "absent"
)

// UnsupportedStrategy defines how the renderer treats values it cannot stringify
type UnsupportedStrategy int

const (
	// UnsupportedStrategyOmit drops the value silently
	UnsupportedStrategyOmit UnsupportedStrategy = iota
	// UnsupportedStrategyLog drops the value and logs a warning
	UnsupportedStrategyLog
	// UnsupportedStrategyThrow stops rendering and returns an error
	UnsupportedStrategyThrow
)

// Unsupported strategy string values for config parsing
const (
	UnsupportedStrategyNameOmit  = "omit"
	UnsupportedStrategyNameLog   = "log"
	UnsupportedStrategyNameThrow = "throw"
)

// String returns the string representation of the strategy
func (s UnsupportedStrategy) String() string {
	switch s {
	case UnsupportedStrategyLog:
		return UnsupportedStrategyNameLog
	case UnsupportedStrategyThrow:
		return UnsupportedStrategyNameThrow
	default:
		return UnsupportedStrategyNameOmit
	}
}

// ParseUnsupportedStrategy parses a strategy name.
// The empty string maps to UnsupportedStrategyOmit.
func ParseUnsupportedStrategy(s string) (UnsupportedStrategy, error) {
	switch s {
	case "", UnsupportedStrategyNameOmit:
		return UnsupportedStrategyOmit, nil
	case UnsupportedStrategyNameLog:
		return UnsupportedStrategyLog, nil
	case UnsupportedStrategyNameThrow:
		return UnsupportedStrategyThrow, nil
	default:
		return UnsupportedStrategyOmit, NewInvalidStrategyError(s)
	}
}

// Default configuration values
const (
	DefaultMaxDepth    = 100
	DefaultStrictArity = false

	// ConversionDepthCeiling bounds the conversion of Go slices when the
	// render depth is unlimited
	ConversionDepthCeiling = 10000
)

// Canonical spellings for non-finite numbers
const (
	NumberTextNaN    = "NaN"
	NumberTextPosInf = "inf"
	NumberTextNegInf = "-inf"
)

// Slot outcomes reported by Explain
const (
	SlotEmitted = "emitted"
	SlotDropped = "dropped"
	SlotFinal   = "final"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyErrorKind    = "error_kind"
	MetaKeyReason       = "reason"
	MetaKeySegmentCount = "segment_count"
	MetaKeySlot         = "slot"
	MetaKeyValueType    = "value_type"
	MetaKeyCurrentDepth = "current_depth"
	MetaKeyMaxDepth     = "max_depth"
	MetaKeyStrategy     = "strategy"
	MetaKeyPath         = "path"
)

// Error kind values stored under MetaKeyErrorKind
const (
	ErrorKindContractViolation = "contract_violation"
	ErrorKindUnsupportedValue  = "unsupported_value"
	ErrorKindRecursionLimit    = "recursion_limit_exceeded"
	ErrorKindConfig            = "config"
	ErrorKindWrite             = "write"
)

// Log message constants
const (
	LogMsgWeaverCreated      = "weaver created"
	LogMsgInterleaveStart    = "starting interleave"
	LogMsgInterleaveEnd      = "interleave complete"
	LogMsgSlotDropped        = "absent substitution dropped"
	LogMsgExtraSubstitutions = "substitutions beyond last slot ignored"
	LogMsgRenderStart        = "starting render"
	LogMsgRenderEnd          = "render complete"
	LogMsgUnsupportedOmitted = "unsupported value omitted"
	LogMsgDepthLimitReached  = "nesting depth limit reached"
)

// Log field name constants
const (
	LogFieldSegments      = "segments"
	LogFieldSubstitutions = "substitutions"
	LogFieldItems         = "items"
	LogFieldSlot          = "slot"
	LogFieldDepth         = "depth"
	LogFieldMaxDepth      = "max_depth"
	LogFieldValueType     = "value_type"
	LogFieldBytes         = "bytes"
	LogFieldStrategy      = "strategy"
)
