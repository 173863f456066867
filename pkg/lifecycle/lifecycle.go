// Package lifecycle defines the contracts for the provisioning steps.
// Implementations live in internal/io* packages; the orchestrator in
// pkg/setup sequences them without knowing their concrete types.
package lifecycle

import (
	"context"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/pm"
)

// AuthStrategy identifies how the administrative account is reached.
// The set is closed; strategies are probed in declared order.
type AuthStrategy int

const (
	// AuthNone means no strategy succeeded.
	AuthNone AuthStrategy = iota

	// AuthSocket is a client invocation elevated through sudo with no
	// explicit password. Covers fresh installs that use local peer
	// (unix_socket) authentication.
	AuthSocket

	// AuthNoPassword is a direct client invocation over TCP with no
	// password at all.
	AuthNoPassword

	// AuthPassword is a client invocation with an interactively
	// collected administrative password.
	AuthPassword
)

func (s AuthStrategy) String() string {
	switch s {
	case AuthSocket:
		return "socket"
	case AuthNoPassword:
		return "no-password"
	case AuthPassword:
		return "password"
	default:
		return "none"
	}
}

// AuthOutcome is produced once by the prober and consumed, read-only,
// by every later SQL operation in the run.
type AuthOutcome struct {
	Strategy  AuthStrategy
	Succeeded bool

	// AdminPassword holds the administrative password collected for
	// the AuthPassword strategy; empty otherwise. It is passed to the
	// client through the environment, never through argv.
	AdminPassword string

	// Interactive reports that the password was collected at a prompt.
	Interactive bool
}

// Detector probes the host for an available, working package manager.
type Detector interface {
	// Detect returns the first catalogued profile whose detect
	// command exits zero. Returns an error when no package manager
	// is found; the caller must treat that as fatal.
	Detect(ctx context.Context) (pm.Profile, error)
}

// Installer installs and controls the database service through a
// detected package manager profile. Install is idempotent: safe to
// call when the service is already installed.
type Installer interface {
	// Install runs update (best-effort), install (fatal on failure),
	// post-install quirks and a start/enable attempt. The running
	// state is re-verified independently by the orchestrator.
	Install(ctx context.Context, p pm.Profile) error

	// Start attempts to start the service through the default init
	// control mechanism, falling back to the legacy service command.
	Start(ctx context.Context, p pm.Profile) error

	// Running reports whether the database service is active.
	Running(ctx context.Context, p pm.Profile) bool

	// ClientInstalled reports whether the database client binary is
	// already on PATH.
	ClientInstalled() bool
}

// AuthProber empirically discovers a working administrative
// authentication strategy. The target host's security configuration is
// unknown a priori and varies by distribution and install state.
type AuthProber interface {
	Probe(ctx context.Context, cfg *config.DatabaseConfig) AuthOutcome
}

// SQLExecutor runs one multi-statement SQL batch through the database
// client, selecting connection parameters from the auth outcome.
type SQLExecutor interface {
	// Execute runs the batch. When useNamedDB is set the client
	// selects cfg.Name before executing. Captured stderr is surfaced
	// verbatim in the returned error. Nothing is retried.
	Execute(
		ctx context.Context,
		batch string,
		cfg *config.DatabaseConfig,
		useNamedDB bool,
		auth AuthOutcome,
	) error
}

// Provisioner issues the idempotent DDL and account statements.
// Reruns must not fail or duplicate data.
type Provisioner interface {
	// CreateDatabase creates the database and the full multi-tenant
	// table set.
	CreateDatabase(
		ctx context.Context, cfg *config.DatabaseConfig, auth AuthOutcome,
	) error

	// CreateUser creates the service account, grants it full
	// privileges scoped to the one database, and flushes privileges.
	CreateUser(
		ctx context.Context, cfg *config.DatabaseConfig, auth AuthOutcome,
	) error

	// Seed inserts tenant-scoped sample rows. Failure here is
	// non-fatal to the overall run.
	Seed(
		ctx context.Context, cfg *config.DatabaseConfig, auth AuthOutcome,
	) error
}

// Verifier confirms end-to-end usability as the newly created service
// account, not the administrative one. It exists to catch account or
// grant misconfiguration the administrative path would not detect.
type Verifier interface {
	Verify(ctx context.Context, cfg *config.DatabaseConfig) error
}
