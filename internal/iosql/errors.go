package iosql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udbtool/udb/pkg/errcode"
)

type sqlError struct {
	error
	code errcode.Code
	hint string
}

func (e *sqlError) Code() errcode.Code { return e.code }
func (e *sqlError) Hint() string       { return e.hint }
func (e *sqlError) Unwrap() error      { return e.error }

// ExecError is returned when the client exits non-zero. The captured
// stderr is surfaced verbatim.
func ExecError(stderr string) error {
	return &sqlError{
		error: fmt.Errorf("sql batch failed: %s",
			strings.TrimSpace(stderr)),
		code: errcode.SQLExecError,
		hint: "The database client reported the error above. " +
			"All statements are idempotent; fix the cause and rerun.",
	}
}

// ClientError is returned when the client process could not be
// spawned, typically because the mysql binary is missing.
func ClientError(cause error) error {
	return &sqlError{
		error: fmt.Errorf("could not invoke database client: %w", cause),
		code:  errcode.SQLClientMissingError,
		hint: "Check that the mysql client binary is installed " +
			"and on PATH.",
	}
}

// NotAuthenticatedError guards against SQL execution without a
// succeeded authentication outcome.
func NotAuthenticatedError() error {
	return &sqlError{
		error: errors.New("no authentication strategy established"),
		code:  errcode.AuthProbeError,
		hint:  "Run the full setup so an authentication strategy is probed first.",
	}
}
