package ioprovision

import (
	"fmt"

	"github.com/udbtool/udb/pkg/errcode"
)

type provisionError struct {
	error
	code errcode.Code
	hint string
}

func (e *provisionError) Code() errcode.Code { return e.code }
func (e *provisionError) Hint() string       { return e.hint }
func (e *provisionError) Unwrap() error      { return e.error }

// SchemaError wraps a failed database/table creation batch.
func SchemaError(database string, cause error) error {
	return &provisionError{
		error: fmt.Errorf("schema creation for %q failed: %w",
			database, cause),
		code: errcode.SchemaCreateError,
		hint: "All DDL is idempotent; fix the reported problem " +
			"and rerun the full setup.",
	}
}

// UserError wraps a failed service account creation batch.
func UserError(user string, cause error) error {
	return &provisionError{
		error: fmt.Errorf("service account %q creation failed: %w",
			user, cause),
		code: errcode.UserCreateError,
		hint: "The administrative account may lack CREATE USER or " +
			"GRANT privileges on this server.",
	}
}

// SeedError wraps a failed sample-data batch. Non-fatal upstream.
func SeedError(cause error) error {
	return &provisionError{
		error: fmt.Errorf("sample data insertion failed: %w", cause),
		code:  errcode.SeedDataError,
		hint:  "The schema itself is unaffected; sample rows can be added later.",
	}
}
