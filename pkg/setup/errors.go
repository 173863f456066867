package setup

import (
	"errors"
	"fmt"

	"github.com/udbtool/udb/pkg/errcode"
)

type setupError struct {
	error
	code errcode.Code
	hint string
}

func (e *setupError) Code() errcode.Code { return e.code }
func (e *setupError) Hint() string       { return e.hint }
func (e *setupError) Unwrap() error      { return e.error }

// PrivilegeError is returned when the process runs unprivileged on a
// host without sudo.
func PrivilegeError() error {
	return &setupError{
		error: errors.New("insufficient privileges: not root and sudo not found"),
		code:  errcode.PrivilegeError,
		hint: "Run this tool as root, or install sudo and add " +
			"your user to the sudoers file.",
	}
}

// ServiceStartError is returned when the database service does not
// reach a running state after a start attempt.
func ServiceStartError(service string) error {
	return &setupError{
		error: fmt.Errorf("service %q failed to start", service),
		code:  errcode.ServiceStartError,
		hint: fmt.Sprintf("Check the service log with "+
			"'journalctl -u %s' and start it manually, then rerun.",
			service),
	}
}

// AuthError is returned when no authentication strategy succeeded.
func AuthError() error {
	return &setupError{
		error: errors.New("no administrative authentication strategy succeeded"),
		code:  errcode.AuthProbeError,
		hint: "Could not reach the administrative (root) database " +
			"account via socket, passwordless or password login.\n" +
			"If the root password is unknown, reset it with " +
			"mysql_secure_installation and rerun.",
	}
}
