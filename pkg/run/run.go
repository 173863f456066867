// Package run defines the contract for executing external commands.
// Every interaction with the host (package managers, service control,
// the mysql client) goes through a Runner, so pure packages can be
// tested with fakes.
package run

import (
	"context"
)

// Command describes a single subprocess invocation.
type Command struct {
	// Program is the executable to run.
	Program string

	// Args are the program arguments, without the program itself.
	Args []string

	// Env holds extra environment variables appended to the
	// inherited environment. Used to pass passwords without
	// exposing them on the command line.
	Env map[string]string

	// Stdin is fed to the subprocess as standard input when not empty.
	Stdin string
}

// Result captures the outcome of a finished subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the subprocess exited with status zero.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Runner executes commands synchronously. Run blocks until the
// subprocess exits. The returned error is non-nil only when the
// process could not be spawned or the context was cancelled; a
// non-zero exit status is reported through Result.ExitCode instead.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)

	// LookPath reports whether an executable with the given name
	// is available on PATH.
	LookPath(name string) bool
}
