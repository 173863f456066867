// Package iopm probes the host for a working package manager and
// drives installation and service control through it. This is an
// impure I/O package implementing contracts from pkg/lifecycle.
package iopm

import (
	"context"
	"log/slog"
	"os"

	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/pm"
	"github.com/udbtool/udb/pkg/run"
)

// geteuid is overridable in tests.
var geteuid = os.Geteuid

type detector struct {
	runner run.Runner
}

// NewDetector creates a package manager detector.
func NewDetector(r run.Runner) lifecycle.Detector {
	return &detector{runner: r}
}

// Detect iterates the catalogue in priority order and returns the
// first profile whose detect command exits zero. Output is discarded;
// only the exit status matters.
func (d *detector) Detect(ctx context.Context) (pm.Profile, error) {
	for _, p := range pm.Catalogue() {
		res, err := d.runner.Run(ctx, run.Command{
			Program: p.DetectArgs[0],
			Args:    p.DetectArgs[1:],
		})
		if err != nil || !res.OK() {
			slog.Debug("Package manager not present", "name", p.Name)
			continue
		}
		slog.Info("Package manager detected", "name", p.Name)
		return p, nil
	}
	return pm.Profile{}, NotFoundError()
}

// elevate prefixes argv with sudo when not running as root.
func elevate(argv []string) []string {
	if geteuid() == 0 {
		return argv
	}
	return append([]string{"sudo"}, argv...)
}
