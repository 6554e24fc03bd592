package errors

const (
	CodeMissingArgument  = "MISSING_ARGUMENT"
	CodeSourceUnreadable = "SOURCE_UNREADABLE"
)

// Types ////////////////////////////////////////

type CodedError interface {
	Code() string
}

type codedError struct {
	code  string
	msg   string
	cause error
}

func (e *codedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *codedError) Code() string {
	return e.code
}

func (e *codedError) Unwrap() error {
	return e.cause
}

// Error Creators ///////////////////////////////

// A required string argument was empty or missing
func MissingArgument(name string) error {
	return &codedError{
		code: CodeMissingArgument,
		msg:  name + " must not be empty",
	}
}

// The configured source could not be read as bytes
func SourceUnreadable(msg string, cause error) error {
	return &codedError{
		code:  CodeSourceUnreadable,
		msg:   msg,
		cause: cause,
	}
}

// Helpers //////////////////////////////////////

func IsMissingArgument(err error) bool {
	return Code(err) == CodeMissingArgument
}

func IsSourceUnreadable(err error) bool {
	return Code(err) == CodeSourceUnreadable
}

// Return the error code, or the empty string
func Code(err error) string {
	if cerr, ok := err.(CodedError); ok {
		return cerr.Code()
	}

	return ""
}
