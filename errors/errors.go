package errors

import (
	"errors"
	"fmt"
)

type Status string

// The request was rejected before any side effect took place
const Validation Status = "Validation"

// The user declined a wallet network switch
const UserDeclined Status = "UserDeclined"

// The wallet reported an unexpected error during a network switch
const WalletError Status = "WalletError"

// The bridging call, or a step in its stream, reported a failure
const BridgeProtocol Status = "BridgeProtocol"

// The bridging call resolved with a payload that could not be decoded
const Decode Status = "Decode"

// No classification for this error known
const UnknownError Status = "UnknownError"

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// Used for requests rejected pre-flight, with no state change.
func Validationf(format string, args ...interface{}) error {
	return Errorf(Validation, format, args...)
}

// Used when the user declines a wallet network switch.  Callers may choose
// to continue or abort without treating this as a hard fault.
func UserDeclinedf(format string, args ...interface{}) error {
	return Errorf(UserDeclined, format, args...)
}

// Used for failures signaled by the bridging call or its step stream.
func BridgeProtocolf(format string, args ...interface{}) error {
	return Errorf(BridgeProtocol, format, args...)
}

// Used for malformed result envelopes.
func Decodef(format string, args ...interface{}) error {
	return Errorf(Decode, format, args...)
}

// StatusOf extracts the classification of err, UnknownError if it carries none.
func StatusOf(err error) Status {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Status
	}
	return UnknownError
}

func IsUserDeclined(err error) bool {
	return StatusOf(err) == UserDeclined
}

func IsValidation(err error) bool {
	return StatusOf(err) == Validation
}

// MessageOf extracts the user visible message of err without its status
// prefix, suitable for a Failure reason.
func MessageOf(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return err.Error()
}
