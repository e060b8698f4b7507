package validate

import "fmt"

// Kind tags the class of validation failure. The set is closed; every
// failure an engine call can produce carries exactly one of these tags.
type Kind int

const (
	KindMalformedDescriptor Kind = iota
	KindUnknownNativeType
	KindNamingConventionMismatch
	KindMissingOrWrongContextParameter
	KindParameterCountMismatch
	KindParameterTypeMismatch
	KindReturnTypeMismatch
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedDescriptor:
		return "malformed descriptor"
	case KindUnknownNativeType:
		return "unknown native type"
	case KindNamingConventionMismatch:
		return "naming convention mismatch"
	case KindMissingOrWrongContextParameter:
		return "missing or wrong context parameter"
	case KindParameterCountMismatch:
		return "parameter count mismatch"
	case KindParameterTypeMismatch:
		return "parameter type mismatch"
	case KindReturnTypeMismatch:
		return "return type mismatch"
	default:
		return "unknown failure"
	}
}

// Error is the tagged failure produced by Validate. Offset is a byte offset
// into the descriptor string and ParamIndex an index into the declared
// parameter list; either is -1 when it does not apply. For context-parameter
// failures ParamIndex is the declared position (0 or 1); for parameter
// checks it is the comparison-list index, i.e. the declared position minus
// the two context parameters.
type Error struct {
	Kind       Kind
	Message    string
	Offset     int
	ParamIndex int
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, offset, paramIndex int, format string, args ...any) *Error {
	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		Offset:     offset,
		ParamIndex: paramIndex,
	}
}
