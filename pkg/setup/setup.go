// Package setup sequences the provisioning run: privilege check,
// package manager detection, install, service start, authentication
// probe, schema and account provisioning, connectivity verification
// and optional seed data. Each step's failure is terminal; there is no
// retry or rollback. Partial provisioning is left in place for manual
// inspection, and the idempotency of all DDL makes a full rerun safe.
package setup

import (
	"context"
	"os"
	"time"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/run"
)

// Options are the run-mode flags. Immutable.
type Options struct {
	// SampleData inserts tenant-scoped sample rows after verification.
	SampleData bool

	// TestOnly short-circuits directly to connectivity verification
	// against the existing configured account, bypassing privilege
	// checks and installation entirely.
	TestOnly bool
}

// Reporter receives user-facing leveled status lines. It is distinct
// from structured logging; the orchestrator narrates progress through
// it while slog carries diagnostics.
type Reporter interface {
	Infof(format string, a ...any)
	Successf(format string, a ...any)
	Warnf(format string, a ...any)
	Errorf(format string, a ...any)
}

// Components are the collaborators the orchestrator sequences.
type Components struct {
	Detector    lifecycle.Detector
	Installer   lifecycle.Installer
	Prober      lifecycle.AuthProber
	Provisioner lifecycle.Provisioner
	Verifier    lifecycle.Verifier
	Runner      run.Runner
	Report      Reporter
}

// Setup is the top-level provisioning orchestrator.
type Setup struct {
	Components

	// Euid returns the effective user id. Overridable in tests.
	Euid func() int

	// StartWait is the fixed pause after issuing a service start
	// command before re-checking service status. A simple wait, not
	// a poll loop.
	StartWait time.Duration

	// Sleep is overridable in tests.
	Sleep func(time.Duration)
}

// New creates a Setup with production defaults.
func New(c Components) *Setup {
	return &Setup{
		Components: c,
		Euid:       os.Geteuid,
		StartWait:  3 * time.Second,
		Sleep:      time.Sleep,
	}
}

// Run executes the provisioning state machine. It returns nil on
// success; any error is a terminal exit condition for the process.
func (s *Setup) Run(
	ctx context.Context, cfg *config.Config, opts Options,
) error {
	if opts.TestOnly {
		return s.verify(ctx, cfg)
	}

	// PrivilegeCheck: package installation and the socket auth
	// strategy both need root or sudo.
	if s.Euid() != 0 && !s.Runner.LookPath("sudo") {
		return PrivilegeError()
	}

	// Detect
	profile, err := s.Detector.Detect(ctx)
	if err != nil {
		return err
	}
	s.Report.Infof("Using package manager: %s", profile.Name)

	// EnsureInstalled
	if s.Installer.ClientInstalled() {
		s.Report.Infof("Database client already installed, skipping install")
	} else {
		s.Report.Infof("Installing database server via %s...", profile.Name)
		if err = s.Installer.Install(ctx, profile); err != nil {
			return err
		}
		s.Report.Successf("Database server installed")
	}

	// EnsureRunning
	if !s.Installer.Running(ctx, profile) {
		s.Report.Infof("Starting %s service...", profile.Service)
		// Best-effort; the running state is what decides.
		_ = s.Installer.Start(ctx, profile)
		s.Sleep(s.StartWait)
		if !s.Installer.Running(ctx, profile) {
			return ServiceStartError(profile.Service)
		}
	}
	s.Report.Successf("Service %s is running", profile.Service)

	// AuthProbe. Schema and account creation must never be attempted
	// without a succeeded outcome.
	auth := s.Prober.Probe(ctx, &cfg.Database)
	if !auth.Succeeded {
		return AuthError()
	}
	s.Report.Successf("Administrative access via %s strategy", auth.Strategy)

	// ProvisionSchema
	s.Report.Infof("Creating database %s and tables...", cfg.Database.Name)
	if err = s.Provisioner.CreateDatabase(ctx, &cfg.Database, auth); err != nil {
		return err
	}
	s.Report.Successf("Database schema is in place")

	// ProvisionUser
	s.Report.Infof("Creating service account %s...", cfg.Database.User)
	if err = s.Provisioner.CreateUser(ctx, &cfg.Database, auth); err != nil {
		return err
	}
	s.Report.Successf("Service account created and granted")

	// Verify
	if err = s.verify(ctx, cfg); err != nil {
		return err
	}

	// SeedOptional: failure is a warning, never fatal.
	if opts.SampleData {
		s.Report.Infof("Inserting sample data...")
		if err = s.Provisioner.Seed(ctx, &cfg.Database, auth); err != nil {
			s.Report.Warnf("Sample data could not be inserted: %v", err)
		} else {
			s.Report.Successf("Sample data inserted")
		}
	}

	s.summary(cfg)
	return nil
}

func (s *Setup) verify(ctx context.Context, cfg *config.Config) error {
	s.Report.Infof("Verifying connectivity as %s@%s:%d/%s...",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Name)
	if err := s.Verifier.Verify(ctx, &cfg.Database); err != nil {
		return err
	}
	s.Report.Successf("Connectivity verified")
	return nil
}

func (s *Setup) summary(cfg *config.Config) {
	s.Report.Successf("Setup complete")
	s.Report.Infof("  database: %s", cfg.Database.Name)
	s.Report.Infof("  user:     %s", cfg.Database.User)
	s.Report.Infof("  endpoint: %s:%d",
		cfg.Database.Host, cfg.Database.Port)
	s.Report.Infof("Point the web stack at this database to finish setup.")
}
