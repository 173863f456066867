package pm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbtool/udb/pkg/pm"
)

func TestCatalogueOrder(t *testing.T) {
	// Declared order is priority order; apt wins on hosts where
	// several managers coexist.
	names := pm.SupportedNames()
	assert.Equal(t,
		[]string{"apt", "dnf", "yum", "pacman", "zypper", "apk"},
		names,
	)
}

func TestCatalogueProfiles(t *testing.T) {
	for _, p := range pm.Catalogue() {
		t.Run(p.Name, func(t *testing.T) {
			require.NotEmpty(t, p.DetectArgs)
			require.NotEmpty(t, p.UpdateArgs)
			require.NotEmpty(t, p.InstallArgs)
			require.NotEmpty(t, p.Packages)
			assert.Equal(t, "mariadb", p.Service)

			// A detect command must be cheap and side-effect free.
			assert.Contains(t, p.DetectArgs[len(p.DetectArgs)-1], "version")
		})
	}
}

func TestCatalogueQuirks(t *testing.T) {
	quirks := make(map[string]pm.Profile)
	for _, p := range pm.Catalogue() {
		quirks[p.Name] = p
	}

	assert.True(t, quirks["pacman"].InitDataDir,
		"Arch packages do not initialize the data directory")
	assert.True(t, quirks["apk"].InitDataDir)
	assert.True(t, quirks["apk"].OpenRC,
		"Alpine uses OpenRC instead of systemd")
	assert.False(t, quirks["apt"].InitDataDir)
	assert.False(t, quirks["apt"].OpenRC)
}
