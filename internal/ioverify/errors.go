package ioverify

import (
	"fmt"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/errcode"
)

type connectivityError struct {
	error
	hint string
}

func (e *connectivityError) Code() errcode.Code { return errcode.ConnectivityError }
func (e *connectivityError) Hint() string       { return e.hint }
func (e *connectivityError) Unwrap() error      { return e.error }

// ConnectivityError wraps a failed round trip as the service account.
func ConnectivityError(cfg *config.DatabaseConfig, cause error) error {
	return &connectivityError{
		error: fmt.Errorf("connectivity check as %s@%s:%d/%s failed: %w",
			cfg.User, cfg.Host, cfg.Port, cfg.Name, cause),
		hint: fmt.Sprintf(
			"Check that the account %q exists, its password matches "+
				"the configuration, and it holds privileges on %q.\n"+
				"A full rerun of the setup recreates account and "+
				"grants; all statements are idempotent.",
			cfg.User, cfg.Name),
	}
}
