// Package schema provides the multi-tenant DDL for the web-stack
// database. Every table carries a site_key discriminator column and
// scopes its uniqueness constraints per tenant, so two sites may share
// a slug or identifier value without collision.
//
// All statements use "if not exists" semantics. Keys are declared
// inline in CREATE TABLE because MySQL's CREATE INDEX is not
// idempotent; this keeps a full rerun safe.
package schema

import (
	"fmt"
	"strings"
)

// Table pairs a table name with its idempotent CREATE statement.
type Table struct {
	Name string
	DDL  string
}

// Tables returns the full multi-tenant table set in creation order.
func Tables() []Table {
	return []Table{
		{
			Name: "pages",
			DDL: `CREATE TABLE IF NOT EXISTS pages (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    uuid CHAR(36) NOT NULL,
    slug VARCHAR(190) NOT NULL,
    title VARCHAR(255) NOT NULL,
    body MEDIUMTEXT,
    published TINYINT(1) NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        ON UPDATE CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_pages_site_slug (site_key, slug),
    KEY idx_pages_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "projects",
			DDL: `CREATE TABLE IF NOT EXISTS projects (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    uuid CHAR(36) NOT NULL,
    slug VARCHAR(190) NOT NULL,
    name VARCHAR(255) NOT NULL,
    summary TEXT,
    url VARCHAR(255),
    sort_order INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_projects_site_slug (site_key, slug),
    KEY idx_projects_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "transactions",
			DDL: `CREATE TABLE IF NOT EXISTS transactions (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    reference VARCHAR(190) NOT NULL,
    amount_cents BIGINT NOT NULL,
    currency CHAR(3) NOT NULL DEFAULT 'USD',
    status VARCHAR(32) NOT NULL DEFAULT 'pending',
    occurred_at DATETIME NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_transactions_site_ref (site_key, reference),
    KEY idx_transactions_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "contacts",
			DDL: `CREATE TABLE IF NOT EXISTS contacts (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    email VARCHAR(190) NOT NULL,
    name VARCHAR(255),
    message TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    KEY idx_contacts_site_email (site_key, email),
    KEY idx_contacts_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "appointments",
			DDL: `CREATE TABLE IF NOT EXISTS appointments (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    starts_at DATETIME NOT NULL,
    client_name VARCHAR(255) NOT NULL,
    client_email VARCHAR(190) NOT NULL,
    status VARCHAR(32) NOT NULL DEFAULT 'requested',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_appointments_slot (site_key, starts_at, client_email),
    KEY idx_appointments_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "site_settings",
			DDL: `CREATE TABLE IF NOT EXISTS site_settings (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    setting_key VARCHAR(190) NOT NULL,
    value TEXT,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        ON UPDATE CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_settings_site_key (site_key, setting_key),
    KEY idx_settings_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
		{
			Name: "admin_users",
			DDL: `CREATE TABLE IF NOT EXISTS admin_users (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    site_key VARCHAR(64) NOT NULL,
    username VARCHAR(190) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    email VARCHAR(190),
    role VARCHAR(32) NOT NULL DEFAULT 'editor',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (id),
    UNIQUE KEY uniq_admins_site_username (site_key, username),
    KEY idx_admins_site (site_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
		},
	}
}

// CreateDatabaseSQL returns the idempotent CREATE DATABASE statement.
func CreateDatabaseSQL(name string) string {
	return fmt.Sprintf(
		"CREATE DATABASE IF NOT EXISTS %s "+
			"CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci;",
		QuoteIdent(name),
	)
}

// DatabaseDDL returns the complete batch creating the database and the
// full table set. It selects the database with USE so the batch runs
// on a connection without a named database, which is the state before
// the database exists.
func DatabaseDDL(name string) string {
	var b strings.Builder
	b.WriteString(CreateDatabaseSQL(name))
	b.WriteString("\nUSE ")
	b.WriteString(QuoteIdent(name))
	b.WriteString(";\n")
	for _, table := range Tables() {
		b.WriteString(table.DDL)
		b.WriteString("\n")
	}
	return b.String()
}

// QuoteIdent quotes a MySQL identifier with backticks.
func QuoteIdent(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "``") + "`"
}

// QuoteString quotes a MySQL string literal.
func QuoteString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `''`)
	return "'" + r.Replace(s) + "'"
}
