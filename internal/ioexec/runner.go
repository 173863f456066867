// Package ioexec implements the run.Runner contract on top of the
// forge executor library. This is an impure I/O package; every
// subprocess the tool spawns goes through it.
package ioexec

import (
	"context"
	"log/slog"
	"os/exec"

	executor "github.com/input-output-hk/catalyst-forge-libs/executor"
	"github.com/udbtool/udb/pkg/run"
)

type execRunner struct{}

// NewRunner creates a production command runner.
func NewRunner() run.Runner {
	return &execRunner{}
}

// Run executes the command and blocks until it exits. A non-zero exit
// status is not an error here; it is reported through Result.ExitCode
// so callers can branch on it. Spawn failures (missing binary,
// cancelled context) return an error.
func (r *execRunner) Run(
	ctx context.Context, cmd run.Command,
) (run.Result, error) {
	slog.Debug("Running command",
		"program", cmd.Program, "args", cmd.Args)

	opts := []executor.Option{executor.SilentMode()}
	if len(cmd.Env) > 0 {
		opts = append(opts, executor.WithEnv(cmd.Env))
	}

	exe := executor.New(cmd.Program, cmd.Args...)
	res, err := exe.ExecuteWithInput(ctx, cmd.Stdin, opts...)
	if res == nil {
		return run.Result{ExitCode: -1}, SpawnError(cmd.Program, err)
	}

	out := run.Result{
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	}

	// ExitCode -1 means the process never produced an exit status:
	// the binary is missing or the context was cancelled.
	if err != nil && res.ExitCode < 0 {
		return out, SpawnError(cmd.Program, err)
	}

	slog.Debug("Command finished",
		"program", cmd.Program, "exit_code", out.ExitCode)
	return out, nil
}

// LookPath reports whether an executable is available on PATH.
func (r *execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
