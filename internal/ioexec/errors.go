package ioexec

import (
	"fmt"

	"github.com/udbtool/udb/pkg/errcode"
)

type spawnError struct {
	error
	program string
}

func (e *spawnError) Code() errcode.Code { return errcode.CommandSpawnError }

func (e *spawnError) Hint() string {
	return fmt.Sprintf(
		"The command %q could not be started. "+
			"Check that it is installed and on PATH.", e.program)
}

// SpawnError is returned when a subprocess could not be started at
// all, as opposed to exiting with a non-zero status.
func SpawnError(program string, cause error) error {
	return &spawnError{
		error:   fmt.Errorf("failed to start %q: %w", program, cause),
		program: program,
	}
}
