package iopm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/pm"
	"github.com/udbtool/udb/pkg/run"
)

// clientBinary is the database client used for all SQL work.
const clientBinary = "mysql"

type installer struct {
	runner run.Runner
}

// NewInstaller creates a service installer for a detected profile.
func NewInstaller(r run.Runner) lifecycle.Installer {
	return &installer{runner: r}
}

// Install runs update, install, post-install quirks and a start/enable
// attempt. Only the install step itself is fatal; everything else is
// best-effort because the orchestrator re-verifies the running state
// afterwards. Idempotent: safe to call when already installed.
func (ins *installer) Install(ctx context.Context, p pm.Profile) error {
	// Metadata refresh is best-effort; a stale mirror or offline
	// repo must not kill the run.
	if res, err := ins.sudoRun(ctx, p.UpdateArgs); err != nil || !res.OK() {
		slog.Warn("Package metadata refresh failed, continuing",
			"manager", p.Name, "stderr", tail(resStderr(res, err)))
	}

	argv := make([]string, 0, len(p.InstallArgs)+len(p.Packages))
	argv = append(argv, p.InstallArgs...)
	argv = append(argv, p.Packages...)
	res, err := ins.sudoRun(ctx, argv)
	if err != nil {
		return InstallError(p.Name, err.Error())
	}
	if !res.OK() {
		return InstallError(p.Name, res.Stderr)
	}

	if p.InitDataDir {
		ins.initDataDir(ctx)
	}

	// Start and enable attempts; the orchestrator rechecks Running.
	_ = ins.Start(ctx, p)
	ins.enable(ctx, p)

	return nil
}

// Start starts the service through the platform's init control
// mechanism, falling back to the legacy service command when
// systemctl is unavailable.
func (ins *installer) Start(ctx context.Context, p pm.Profile) error {
	var argv []string
	switch {
	case p.OpenRC:
		argv = []string{"rc-service", p.Service, "start"}
	case ins.runner.LookPath("systemctl"):
		argv = []string{"systemctl", "start", p.Service}
	default:
		argv = []string{"service", p.Service, "start"}
	}

	res, err := ins.sudoRun(ctx, argv)
	if err != nil {
		return ServiceControlError(p.Service, err.Error())
	}
	if !res.OK() {
		return ServiceControlError(p.Service, res.Stderr)
	}
	return nil
}

// Running reports whether the service is active right now.
func (ins *installer) Running(ctx context.Context, p pm.Profile) bool {
	var argv []string
	switch {
	case p.OpenRC:
		argv = []string{"rc-service", p.Service, "status"}
	case ins.runner.LookPath("systemctl"):
		argv = []string{"systemctl", "is-active", "--quiet", p.Service}
	default:
		argv = []string{"service", p.Service, "status"}
	}

	res, err := ins.sudoRun(ctx, argv)
	return err == nil && res.OK()
}

// ClientInstalled reports whether the mysql client binary is on PATH.
func (ins *installer) ClientInstalled() bool {
	return ins.runner.LookPath(clientBinary)
}

// initDataDir initializes the MariaDB data directory on platforms
// whose packages skip it (Arch, Alpine). Best-effort: it fails
// harmlessly when the directory is already populated.
func (ins *installer) initDataDir(ctx context.Context) {
	argv := []string{
		"mariadb-install-db",
		"--user=mysql",
		"--basedir=/usr",
		"--datadir=/var/lib/mysql",
	}
	if res, err := ins.sudoRun(ctx, argv); err != nil || !res.OK() {
		slog.Warn("Data directory initialization reported a problem",
			"stderr", tail(resStderr(res, err)))
	}
}

// enable marks the service for start on boot. Best-effort.
func (ins *installer) enable(ctx context.Context, p pm.Profile) {
	var argv []string
	switch {
	case p.OpenRC:
		argv = []string{"rc-update", "add", p.Service, "default"}
	case ins.runner.LookPath("systemctl"):
		argv = []string{"systemctl", "enable", p.Service}
	default:
		// Legacy init systems have no uniform enable mechanism.
		return
	}
	if res, err := ins.sudoRun(ctx, argv); err != nil || !res.OK() {
		slog.Warn("Could not enable service on boot",
			"service", p.Service, "stderr", tail(resStderr(res, err)))
	}
}

func (ins *installer) sudoRun(
	ctx context.Context, argv []string,
) (run.Result, error) {
	argv = elevate(argv)
	return ins.runner.Run(ctx, run.Command{
		Program: argv[0],
		Args:    argv[1:],
	})
}

func resStderr(res run.Result, err error) string {
	if err != nil {
		return err.Error()
	}
	return res.Stderr
}

// tail keeps diagnostic log lines readable.
func tail(s string) string {
	s = strings.TrimSpace(s)
	const max = 400
	if len(s) > max {
		return "..." + s[len(s)-max:]
	}
	return s
}
