// Package ioverify confirms end-to-end usability of the provisioned
// database by connecting as the newly created service account - not
// the administrative one - and running a trivial round-trip query.
// This catches account and grant misconfiguration that the
// administrative path would not detect.
package ioverify

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"golang.org/x/term"
)

type verifier struct {
	// promptPassword collects the service account password at a
	// terminal; ok is false when no terminal is attached or the user
	// entered nothing, in which case the configured password is used.
	promptPassword func(user string) (password string, ok bool)
}

// New creates a connectivity verifier.
func New() lifecycle.Verifier {
	return &verifier{promptPassword: readServicePassword}
}

// Verify opens a connection as the service account and runs SELECT 1.
func (v *verifier) Verify(
	ctx context.Context, cfg *config.DatabaseConfig,
) error {
	password := cfg.Password
	if pw, ok := v.promptPassword(cfg.User); ok {
		password = pw
	}

	db, err := sql.Open("mysql", dsn(cfg, password))
	if err != nil {
		return ConnectivityError(cfg, err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return ConnectivityError(cfg, err)
	}

	var one int
	if err = db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return ConnectivityError(cfg, err)
	}

	slog.Info("Connectivity verified",
		"user", cfg.User, "database", cfg.Name)
	return nil
}

// connectTimeout bounds how long the verification dial may take.
// Kept in the DSN rather than the context so the driver reports the
// timeout with its own diagnostics.
const connectTimeout = 5 * time.Second

// dsn builds the go-sql-driver connection string for the service
// account.
func dsn(cfg *config.DatabaseConfig, password string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?timeout=%s",
		cfg.User, password, cfg.Host, cfg.Port, cfg.Name,
		connectTimeout)
}

// readServicePassword prompts once for the service account password.
// The label names the account explicitly: this prompt is distinct
// from, and comes after, any administrative password prompt.
func readServicePassword(user string) (string, bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", false
	}
	fmt.Fprintf(os.Stderr,
		"Enter password for the SERVICE account %q "+
			"(empty to use the configured one): ", user)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil || len(pw) == 0 {
		return "", false
	}
	return string(pw), true
}
