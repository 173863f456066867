// Package cmd provides the udb command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/udbtool/udb/internal/ioauth"
	"github.com/udbtool/udb/internal/ioexec"
	"github.com/udbtool/udb/internal/iologger"
	"github.com/udbtool/udb/internal/iomsg"
	"github.com/udbtool/udb/internal/iopm"
	"github.com/udbtool/udb/internal/ioprovision"
	"github.com/udbtool/udb/internal/iosql"
	"github.com/udbtool/udb/internal/ioverify"
	app "github.com/udbtool/udb/pkg"
	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/setup"
)

var (
	cfgFile    string
	verbose    bool
	sampleData bool
	testOnly   bool
	cfg        *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "udb",
		Short: "udb provisions the universal database on a Linux host",
		Long: `udb takes a fresh Linux host from "no database installed" to a
running MariaDB server with a provisioned schema, a dedicated service
account and verified connectivity, in one command.

The run is a fixed sequence: detect the system package manager,
install and start the database server, find a working administrative
login, create the database and its tables, create the service account
with its grants, and finally connect as that account to prove the web
stack can too. Every statement is idempotent; rerunning after a
failure is always safe.

Configuration precedence (highest to lowest):
  1. Environment variables (DB_NAME, DB_USER, DB_PASSWORD,
     DB_HOST, DB_PORT)
  2. Config file (~/.config/udb/config.json)
  3. Built-in defaults`,
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			app.Version, app.Build),
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "udb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for udb")

	rootCmd.Flags().BoolVarP(&sampleData, "sample-data", "s", false,
		"insert demo-site sample rows after provisioning")
	rootCmd.Flags().BoolVarP(&testOnly, "test-only", "t", false,
		"skip provisioning, only verify connectivity as the service account")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log at debug level")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default ~/.config/udb/config.json)")

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	cfg = config.New()

	fromSources, err := initConfig()
	if err != nil {
		return err
	}
	cfg.Update(fromSources.ToOptions())

	if verbose {
		cfg.Update([]config.Option{config.OptLogLevel("debug")})
	}
	iologger.Init(cfg.Log)

	slog.Debug("Configuration resolved",
		"database", cfg.Database.Name,
		"user", cfg.Database.User,
		"endpoint", fmt.Sprintf("%s:%d",
			cfg.Database.Host, cfg.Database.Port),
	)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	report := iomsg.New()
	runner := ioexec.NewRunner()
	sqlExec := iosql.NewExecutor(runner)

	s := setup.New(setup.Components{
		Detector:    iopm.NewDetector(runner),
		Installer:   iopm.NewInstaller(runner),
		Prober:      ioauth.NewProber(runner),
		Provisioner: ioprovision.New(sqlExec),
		Verifier:    ioverify.New(),
		Runner:      runner,
		Report:      report,
	})

	opts := setup.Options{SampleData: sampleData, TestOnly: testOnly}
	if err := s.Run(cmd.Context(), cfg, opts); err != nil {
		report.Errorf("%v", err)
		report.Hint(err)
		return err
	}
	return nil
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
