// Package errs defines the error taxonomy shared by the emulator.
//
// The real host raises a TypeError for almost everything. The emulator tags
// each failure with a Code so tests can tell them apart with errors.Is.
package errs

import (
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// Code is a machine-readable error kind.
type Code = ftag.Kind

const (
	CodeIndex            Code = "INDEX_OUT_OF_RANGE"
	CodeNotInGroup       Code = "CHANNEL_NOT_IN_GROUP"
	CodeInvalidValue     Code = "INVALID_VALUE"
	CodeInvalidPlugin    Code = "INVALID_PLUGIN"
	CodeOperationUnsafe  Code = "OPERATION_UNSAFE"
	CodeDeviceUnassigned Code = "DEVICE_UNASSIGNED"
	CodeConfiguration    Code = "CONFIGURATION"
	CodeCallDeprecated   Code = "CALL_DEPRECATED"
	CodeCallFuture       Code = "CALL_FUTURE"
	CodeCallKeyEcho      Code = "CALL_KEY_ECHO"
)

// Kind is an errors.Is target matching any error tagged with its code.
type Kind struct {
	Code    Code
	Message string
}

func (k *Kind) Error() string {
	return k.Message
}

// Sentinels for errors.Is comparisons.
var (
	Index            = &Kind{Code: CodeIndex, Message: "index out of range"}
	NotInGroup       = &Kind{Code: CodeNotInGroup, Message: "channel not a member of that group"}
	InvalidValue     = &Kind{Code: CodeInvalidValue, Message: "invalid value"}
	InvalidPlugin    = &Kind{Code: CodeInvalidPlugin, Message: "plugin is not valid"}
	OperationUnsafe  = &Kind{Code: CodeOperationUnsafe, Message: "operation unsafe at current time"}
	DeviceUnassigned = &Kind{Code: CodeDeviceUnassigned, Message: "device is not assigned"}
	Configuration    = &Kind{Code: CodeConfiguration, Message: "invalid configuration"}
	CallDeprecated   = &Kind{Code: CodeCallDeprecated, Message: "call to deprecated function"}
	CallFuture       = &Kind{Code: CodeCallFuture, Message: "call to function from a newer API version"}
	CallKeyEcho      = &Kind{Code: CodeCallKeyEcho, Message: "call to function that echoes a keystroke"}
)

// New creates an error tagged with code.
func New(code Code, message string) error {
	return fault.New(message, ftag.With(code), matchable)
}

// Newf creates a tagged error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap tags cause with code and adds message in front of it.
func Wrap(code Code, message string, cause error) error {
	return fault.Wrap(cause, fmsg.With(message), ftag.With(code), matchable)
}

// IndexError reports an out-of-range index.
func IndexError(what string, index int) error {
	return Newf(CodeIndex, "%s index %d out of range", what, index)
}

// CodeOf returns the code of the outermost tagged error in err's chain, or
// "" when there is none.
func CodeOf(err error) Code {
	return ftag.Get(err)
}

// matchable makes a tagged chain comparable against a Kind.
func matchable(err error) error {
	return &match{underlying: err}
}

type match struct {
	underlying error
}

func (m *match) Error() string { return m.underlying.Error() }
func (m *match) Unwrap() error { return m.underlying }

func (m *match) Is(target error) bool {
	k, ok := target.(*Kind)
	return ok && ftag.Get(m.underlying) == k.Code
}
