package bot

import "fmt"

type ErrorCode string

const (
	ErrorSendFailed   ErrorCode = "SEND_FAILED"
	ErrorUpstream     ErrorCode = "UPSTREAM_ERROR"
	ErrorInternal     ErrorCode = "INTERNAL_ERROR"
	ErrorInvalidEvent ErrorCode = "INVALID_EVENT"
)

// Error carries a stable code and reason for logging; it never reaches
// the end user.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("bot: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("bot: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
