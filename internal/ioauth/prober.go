// Package ioauth empirically discovers a working administrative
// authentication strategy. The host's security configuration is
// unknown a priori and varies by distribution and install state, so
// the prober tries a fixed, ordered strategy sequence instead of
// assuming one scheme.
package ioauth

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/run"
	"golang.org/x/term"
)

// pingQuery is the trivial read-only query each probe attempt issues.
const pingQuery = "SELECT 1;"

// geteuid is overridable in tests.
var geteuid = os.Geteuid

type prober struct {
	runner run.Runner

	// promptPassword collects the administrative password.
	// Overridable in tests.
	promptPassword func() (string, error)
}

// NewProber creates an authentication strategy prober.
func NewProber(r run.Runner) lifecycle.AuthProber {
	return &prober{
		runner:         r,
		promptPassword: readAdminPassword,
	}
}

// Probe tries, in order: sudo-elevated socket login, direct
// passwordless TCP login, and password login with an interactively
// collected password. The first attempt whose subprocess exits zero
// fixes the strategy for the remainder of the run.
func (p *prober) Probe(
	ctx context.Context, cfg *config.DatabaseConfig,
) lifecycle.AuthOutcome {
	// Least-interactive and most-likely-to-succeed-on-fresh-install
	// first: distro packages default root to unix_socket auth.
	if p.ping(ctx, socketArgs(), nil) {
		slog.Info("Authentication strategy selected", "strategy", "socket")
		return lifecycle.AuthOutcome{
			Strategy:  lifecycle.AuthSocket,
			Succeeded: true,
		}
	}

	if p.ping(ctx, tcpArgs(cfg), nil) {
		slog.Info("Authentication strategy selected", "strategy", "no-password")
		return lifecycle.AuthOutcome{
			Strategy:  lifecycle.AuthNoPassword,
			Succeeded: true,
		}
	}

	password, err := p.promptPassword()
	if err != nil {
		slog.Debug("Password prompt unavailable", "error", err)
		return lifecycle.AuthOutcome{Strategy: lifecycle.AuthNone}
	}
	env := map[string]string{"MYSQL_PWD": password}
	if p.ping(ctx, tcpArgs(cfg), env) {
		slog.Info("Authentication strategy selected", "strategy", "password")
		return lifecycle.AuthOutcome{
			Strategy:      lifecycle.AuthPassword,
			Succeeded:     true,
			AdminPassword: password,
			Interactive:   true,
		}
	}

	return lifecycle.AuthOutcome{Strategy: lifecycle.AuthNone}
}

func (p *prober) ping(
	ctx context.Context, argv []string, env map[string]string,
) bool {
	argv = append(argv, "-e", pingQuery)
	res, err := p.runner.Run(ctx, run.Command{
		Program: argv[0],
		Args:    argv[1:],
		Env:     env,
	})
	return err == nil && res.OK()
}

// socketArgs builds the sudo-elevated local client invocation used for
// unix_socket (peer) authentication. No host or port: the connection
// must go through the local socket.
func socketArgs() []string {
	argv := []string{"mysql", "-u", "root"}
	if geteuid() != 0 {
		argv = append([]string{"sudo"}, argv...)
	}
	return argv
}

// tcpArgs builds the direct client invocation with explicit endpoint.
func tcpArgs(cfg *config.DatabaseConfig) []string {
	return []string{
		"mysql", "-u", "root",
		"-h", cfg.Host,
		"-P", strconv.Itoa(cfg.Port),
	}
}

// readAdminPassword prompts for the administrative password without
// echo. The label names the account explicitly so it is not confused
// with the service account created later.
func readAdminPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr,
		"Enter password for the ADMINISTRATIVE (root) database account: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
