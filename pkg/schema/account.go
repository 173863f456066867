package schema

import (
	"fmt"
	"strings"

	"github.com/udbtool/udb/pkg/config"
)

// serviceAccountHosts lists the hosts the service account is created
// for. The web stack may run on the database host or a separate one.
var serviceAccountHosts = []string{"localhost", "%"}

// CreateUserSQL returns the batch that creates the service account and
// grants it full privileges scoped to the single created database.
// Idempotent: CREATE USER IF NOT EXISTS, and GRANT re-applies cleanly.
func CreateUserSQL(cfg *config.DatabaseConfig) string {
	var b strings.Builder
	for _, host := range serviceAccountHosts {
		account := fmt.Sprintf("%s@%s",
			QuoteString(cfg.User), QuoteString(host))
		fmt.Fprintf(&b,
			"CREATE USER IF NOT EXISTS %s IDENTIFIED BY %s;\n",
			account, QuoteString(cfg.Password))
		fmt.Fprintf(&b,
			"GRANT ALL PRIVILEGES ON %s.* TO %s;\n",
			QuoteIdent(cfg.Name), account)
	}
	b.WriteString("FLUSH PRIVILEGES;\n")
	return b.String()
}
