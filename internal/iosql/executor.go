// Package iosql runs SQL batches through the mysql client binary,
// selecting connection parameters from the probed authentication
// outcome. The tool depends only on the client's exit code and stderr
// text, never on structured output.
package iosql

import (
	"context"
	"os"
	"strconv"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/run"
)

// geteuid is overridable in tests.
var geteuid = os.Geteuid

type executor struct {
	runner run.Runner
}

// NewExecutor creates a SQL batch executor.
func NewExecutor(r run.Runner) lifecycle.SQLExecutor {
	return &executor{runner: r}
}

// Execute runs one multi-statement batch. Nothing is retried: a
// non-zero exit and a spawn failure are both reported to the caller
// with the captured diagnostic text.
func (e *executor) Execute(
	ctx context.Context,
	batch string,
	cfg *config.DatabaseConfig,
	useNamedDB bool,
	auth lifecycle.AuthOutcome,
) error {
	cmd, err := buildCommand(batch, cfg, useNamedDB, auth)
	if err != nil {
		return err
	}

	res, err := e.runner.Run(ctx, cmd)
	if err != nil {
		return ClientError(err)
	}
	if !res.OK() {
		return ExecError(res.Stderr)
	}
	return nil
}

// buildCommand constructs the client invocation for the fixed
// strategy. The socket strategy omits host and port and routes through
// sudo; the TCP strategies use the explicit endpoint, with the
// password (when present) passed via MYSQL_PWD rather than argv.
func buildCommand(
	batch string,
	cfg *config.DatabaseConfig,
	useNamedDB bool,
	auth lifecycle.AuthOutcome,
) (run.Command, error) {
	if !auth.Succeeded {
		return run.Command{}, NotAuthenticatedError()
	}

	var argv []string
	var env map[string]string

	switch auth.Strategy {
	case lifecycle.AuthSocket:
		argv = []string{"mysql", "-u", "root"}
		if geteuid() != 0 {
			argv = append([]string{"sudo"}, argv...)
		}
	case lifecycle.AuthNoPassword:
		argv = []string{
			"mysql", "-u", "root",
			"-h", cfg.Host,
			"-P", strconv.Itoa(cfg.Port),
		}
	case lifecycle.AuthPassword:
		argv = []string{
			"mysql", "-u", "root",
			"-h", cfg.Host,
			"-P", strconv.Itoa(cfg.Port),
		}
		env = map[string]string{"MYSQL_PWD": auth.AdminPassword}
	default:
		return run.Command{}, NotAuthenticatedError()
	}

	// The database selection flag must precede the execute flag.
	if useNamedDB {
		argv = append(argv, "-D", cfg.Name)
	}
	argv = append(argv, "-e", batch)

	return run.Command{
		Program: argv[0],
		Args:    argv[1:],
		Env:     env,
	}, nil
}
