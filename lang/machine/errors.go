package machine

import "fmt"

// Code identifies the taxonomy of conditions that terminate the interpreter,
// mirroring the process exit code a condition maps to.
type Code int

// The set of error codes an IPPcode23 program can fail with, beyond the
// successful/EXIT-requested termination. Values match the exit codes an
// implementation must use.
const (
	CodeCmdArgs               Code = 10
	CodeOpenInputFile         Code = 11
	CodeFormatXML             Code = 31
	CodeBadXML                Code = 32
	CodeSemantic              Code = 52
	CodeOperandType           Code = 53
	CodeNonexistsVar          Code = 54
	CodeNonexistsFrame        Code = 55
	CodeUninitializedVar      Code = 56
	CodeOperandValue          Code = 57
	CodeBadStringManipulation Code = 58
)

func (c Code) String() string {
	switch c {
	case CodeCmdArgs:
		return "invalid command-line arguments"
	case CodeOpenInputFile:
		return "cannot open input file"
	case CodeFormatXML:
		return "malformed XML"
	case CodeBadXML:
		return "XML violates the instruction schema"
	case CodeSemantic:
		return "semantic error"
	case CodeOperandType:
		return "operand has the wrong type"
	case CodeNonexistsVar:
		return "variable does not exist"
	case CodeNonexistsFrame:
		return "frame does not exist"
	case CodeUninitializedVar:
		return "uninitialized value read"
	case CodeOperandValue:
		return "operand value out of range"
	case CodeBadStringManipulation:
		return "invalid string manipulation"
	default:
		return "unknown error"
	}
}

// Error is the error type raised by every load-time or run-time failure that
// must terminate the interpreter with a specific exit code. Callers that
// need the code should use errors.As, not a type switch, since helper
// constructors may wrap it.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// ExitError signals a successful, user-requested EXIT instruction. It is not
// a failure: the driver propagates it to the caller, which must terminate
// the process with Status as its exit code.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Status)
}
