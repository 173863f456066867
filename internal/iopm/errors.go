package iopm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udbtool/udb/pkg/errcode"
	"github.com/udbtool/udb/pkg/pm"
)

type pmError struct {
	error
	code errcode.Code
	hint string
}

func (e *pmError) Code() errcode.Code { return e.code }
func (e *pmError) Hint() string       { return e.hint }
func (e *pmError) Unwrap() error      { return e.error }

// NotFoundError is returned when no catalogued package manager is
// present on the host. There is no way to install without one.
func NotFoundError() error {
	return &pmError{
		error: errors.New("no supported package manager found"),
		code:  errcode.DetectionError,
		hint: fmt.Sprintf(
			"Supported package managers: %s.\n"+
				"Install the database server manually and rerun "+
				"with --test-only to verify connectivity.",
			strings.Join(pm.SupportedNames(), ", ")),
	}
}

// InstallError is returned when the package install step fails.
func InstallError(manager, stderr string) error {
	return &pmError{
		error: fmt.Errorf("package install via %s failed: %s",
			manager, strings.TrimSpace(stderr)),
		code: errcode.InstallError,
		hint: fmt.Sprintf(
			"The %s install command failed. Check network access "+
				"and repository configuration, then rerun.", manager),
	}
}

// ServiceControlError is returned when a start command fails outright.
func ServiceControlError(service, stderr string) error {
	return &pmError{
		error: fmt.Errorf("could not control service %q: %s",
			service, strings.TrimSpace(stderr)),
		code: errcode.ServiceStartError,
		hint: fmt.Sprintf(
			"Start the %s service manually and rerun.", service),
	}
}
