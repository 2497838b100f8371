package dbf

// Errors
var (
	ErrMalformedHeader          = &FormatError{"malformed header"}
	ErrMalformedFieldDescriptor = &FormatError{"malformed field descriptor block"}
	ErrTruncatedFile            = &FormatError{"file shorter than declared record count"}
	ErrEncodingOverflow         = &FormatError{"encoded value exceeds field width"}
	ErrCommitFailed             = &FormatError{"commit failed"}
)

// FormatError represents a table format error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}
