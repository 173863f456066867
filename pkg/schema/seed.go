package schema

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/udbtool/udb/pkg/config"
)

// DemoSiteKey is the tenant discriminator used for sample data.
const DemoSiteKey = "demo"

// SeedSQL returns the batch inserting tenant-scoped sample rows for a
// demo site. INSERT IGNORE keeps reruns from duplicating rows: every
// seeded table has a per-tenant unique key the rows collide on.
// The batch expects the named database to be selected already.
func SeedSQL(cfg *config.DatabaseConfig) string {
	site := QuoteString(DemoSiteKey)

	var b strings.Builder

	fmt.Fprintf(&b,
		"INSERT IGNORE INTO pages "+
			"(site_key, uuid, slug, title, body, published) VALUES\n"+
			"(%s, %s, 'home', 'Welcome', "+
			"'Welcome to your new site.', 1),\n"+
			"(%s, %s, 'about', 'About', "+
			"'Tell visitors about this site.', 1);\n",
		site, QuoteString(uuid.NewString()),
		site, QuoteString(uuid.NewString()),
	)

	fmt.Fprintf(&b,
		"INSERT IGNORE INTO projects "+
			"(site_key, uuid, slug, name, summary, sort_order) VALUES\n"+
			"(%s, %s, 'sample-project', 'Sample Project', "+
			"'A placeholder portfolio entry.', 1);\n",
		site, QuoteString(uuid.NewString()),
	)

	fmt.Fprintf(&b,
		"INSERT IGNORE INTO site_settings "+
			"(site_key, setting_key, value) VALUES\n"+
			"(%s, 'site_title', 'Demo Site'),\n"+
			"(%s, 'theme', 'default');\n",
		site, site,
	)

	// Placeholder hash; the application replaces it on first login
	// setup. Not a usable credential.
	fmt.Fprintf(&b,
		"INSERT IGNORE INTO admin_users "+
			"(site_key, username, password_hash, email, role) VALUES\n"+
			"(%s, 'admin', '*CHANGE_ME*', %s, 'owner');\n",
		site, QuoteString("admin@"+cfg.Host),
	)

	return b.String()
}
