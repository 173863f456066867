package ioauth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/run"
)

type call struct {
	argv string
	env  map[string]string
}

// scriptRunner succeeds only for argv strings in okCommands.
type scriptRunner struct {
	okCommands map[string]bool
	calls      []call
}

func (r *scriptRunner) Run(
	_ context.Context, cmd run.Command,
) (run.Result, error) {
	argv := strings.Join(append([]string{cmd.Program}, cmd.Args...), " ")
	r.calls = append(r.calls, call{argv: argv, env: cmd.Env})
	if r.okCommands[argv] {
		return run.Result{ExitCode: 0}, nil
	}
	return run.Result{ExitCode: 1, Stderr: "Access denied"}, nil
}

func (r *scriptRunner) LookPath(string) bool { return true }

func dbConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Name: "universal_db",
		Host: "localhost",
		Port: 3306,
	}
}

func notRoot(t *testing.T) {
	t.Helper()
	orig := geteuid
	geteuid = func() int { return 1000 }
	t.Cleanup(func() { geteuid = orig })
}

func newTestProber(r run.Runner, pw string, pwErr error) *prober {
	return &prober{
		runner:         r,
		promptPassword: func() (string, error) { return pw, pwErr },
	}
}

func TestProbeSocketFirst(t *testing.T) {
	notRoot(t)
	runner := &scriptRunner{okCommands: map[string]bool{
		"sudo mysql -u root -e SELECT 1;": true,
	}}

	p := newTestProber(runner, "", errors.New("no prompt expected"))
	outcome := p.Probe(context.Background(), dbConfig())

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, lifecycle.AuthSocket, outcome.Strategy)
	require.Len(t, runner.calls, 1, "probing stops at the first success")
}

func TestProbeNoPasswordSecond(t *testing.T) {
	notRoot(t)
	runner := &scriptRunner{okCommands: map[string]bool{
		"mysql -u root -h localhost -P 3306 -e SELECT 1;": true,
	}}

	p := newTestProber(runner, "", errors.New("no prompt expected"))
	outcome := p.Probe(context.Background(), dbConfig())

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, lifecycle.AuthNoPassword, outcome.Strategy)
	assert.Empty(t, outcome.AdminPassword)
}

func TestProbePasswordLast(t *testing.T) {
	notRoot(t)
	// Only the attempt carrying MYSQL_PWD succeeds.
	p := newTestProber(&passwordOnlyRunner{}, "rootpw", nil)

	outcome := p.Probe(context.Background(), dbConfig())

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, lifecycle.AuthPassword, outcome.Strategy)
	assert.Equal(t, "rootpw", outcome.AdminPassword)
	assert.True(t, outcome.Interactive)
}

// passwordOnlyRunner succeeds only when MYSQL_PWD is set, and asserts
// the password never leaks into argv.
type passwordOnlyRunner struct{}

func (r *passwordOnlyRunner) Run(
	_ context.Context, cmd run.Command,
) (run.Result, error) {
	for _, a := range cmd.Args {
		if strings.Contains(a, "rootpw") {
			return run.Result{ExitCode: 2,
				Stderr: "password leaked into argv"}, nil
		}
	}
	if cmd.Env["MYSQL_PWD"] != "" {
		return run.Result{ExitCode: 0}, nil
	}
	return run.Result{ExitCode: 1, Stderr: "Access denied"}, nil
}

func (r *passwordOnlyRunner) LookPath(string) bool { return true }

func TestProbeAllFail(t *testing.T) {
	notRoot(t)
	runner := &scriptRunner{okCommands: map[string]bool{}}
	p := newTestProber(runner, "wrongpw", nil)

	outcome := p.Probe(context.Background(), dbConfig())

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, lifecycle.AuthNone, outcome.Strategy)
}

func TestProbeNoTerminalSkipsPasswordStrategy(t *testing.T) {
	notRoot(t)
	runner := &scriptRunner{okCommands: map[string]bool{}}
	p := newTestProber(runner, "", errors.New("stdin is not a terminal"))

	outcome := p.Probe(context.Background(), dbConfig())

	assert.False(t, outcome.Succeeded)
	// Two non-interactive attempts, no third.
	assert.Len(t, runner.calls, 2)
}

func TestProbeAsRootSkipsSudo(t *testing.T) {
	orig := geteuid
	geteuid = func() int { return 0 }
	t.Cleanup(func() { geteuid = orig })

	runner := &scriptRunner{okCommands: map[string]bool{
		"mysql -u root -e SELECT 1;": true,
	}}
	p := newTestProber(runner, "", errors.New("no prompt expected"))

	outcome := p.Probe(context.Background(), dbConfig())
	assert.True(t, outcome.Succeeded)
	assert.Equal(t, lifecycle.AuthSocket, outcome.Strategy)
}
