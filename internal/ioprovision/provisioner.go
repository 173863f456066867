// Package ioprovision issues the idempotent DDL and account-creation
// batches through the SQL executor. Reruns never fail or duplicate
// data: tables use IF NOT EXISTS, accounts use CREATE USER IF NOT
// EXISTS, and seed rows use INSERT IGNORE against per-tenant unique
// keys.
package ioprovision

import (
	"context"
	"log/slog"

	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/lifecycle"
	"github.com/udbtool/udb/pkg/schema"
)

type provisioner struct {
	sql lifecycle.SQLExecutor
}

// New creates a schema and account provisioner.
func New(sql lifecycle.SQLExecutor) lifecycle.Provisioner {
	return &provisioner{sql: sql}
}

// CreateDatabase creates the database and the full multi-tenant table
// set in one batch. The batch selects the database itself with USE, so
// it runs on a connection without a named database - the state before
// the database exists.
func (p *provisioner) CreateDatabase(
	ctx context.Context, cfg *config.DatabaseConfig, auth lifecycle.AuthOutcome,
) error {
	batch := schema.DatabaseDDL(cfg.Name)
	if err := p.sql.Execute(ctx, batch, cfg, false, auth); err != nil {
		return SchemaError(cfg.Name, err)
	}
	slog.Info("Schema provisioned",
		"database", cfg.Name, "tables", len(schema.Tables()))
	return nil
}

// CreateUser creates the service account and grants it full privileges
// scoped to the one database, then flushes privileges.
func (p *provisioner) CreateUser(
	ctx context.Context, cfg *config.DatabaseConfig, auth lifecycle.AuthOutcome,
) error {
	batch := schema.CreateUserSQL(cfg)
	if err := p.sql.Execute(ctx, batch, cfg, false, auth); err != nil {
		return UserError(cfg.User, err)
	}
	slog.Info("Service account provisioned", "user", cfg.User)
	return nil
}

// Seed inserts tenant-scoped sample rows. The caller treats failure as
// a warning, never as a fatal condition.
func (p *provisioner) Seed(
	ctx context.Context, cfg *config.DatabaseConfig, auth lifecycle.AuthOutcome,
) error {
	batch := schema.SeedSQL(cfg)
	if err := p.sql.Execute(ctx, batch, cfg, true, auth); err != nil {
		return SeedError(err)
	}
	slog.Info("Sample data inserted", "site_key", schema.DemoSiteKey)
	return nil
}
