// Package pm provides the static catalogue of supported Linux package
// managers. The set is closed and known at design time, so profiles are
// plain values evaluated in declared order rather than an open registry.
package pm

// Profile describes how one package manager installs and controls the
// database service. A profile is immutable; one profile is selected per
// run and never changes afterwards.
type Profile struct {
	// Name identifies the package manager ("apt", "dnf", ...).
	Name string

	// DetectArgs is the full argv of a cheap command that exits zero
	// when the manager is present and working.
	DetectArgs []string

	// UpdateArgs refreshes the package metadata. Its failure is
	// treated as best-effort.
	UpdateArgs []string

	// InstallArgs is the install command prefix; Packages are
	// appended to it.
	InstallArgs []string

	// Packages lists the server and client packages to install.
	Packages []string

	// Service is the init-system name of the database service.
	Service string

	// InitDataDir marks managers whose packages do not initialize
	// the data directory on install (Arch, Alpine).
	InitDataDir bool

	// OpenRC marks systems that use OpenRC instead of systemd
	// for service control (Alpine).
	OpenRC bool
}

// Catalogue returns all supported package manager profiles in priority
// order. Detection returns the first profile whose detect command
// succeeds, so order matters on hosts where several managers coexist.
func Catalogue() []Profile {
	return []Profile{
		{
			Name:        "apt",
			DetectArgs:  []string{"apt-get", "--version"},
			UpdateArgs:  []string{"apt-get", "update", "-qq"},
			InstallArgs: []string{"apt-get", "install", "-y"},
			Packages:    []string{"mariadb-server", "mariadb-client"},
			Service:     "mariadb",
		},
		{
			Name:        "dnf",
			DetectArgs:  []string{"dnf", "--version"},
			UpdateArgs:  []string{"dnf", "makecache"},
			InstallArgs: []string{"dnf", "install", "-y"},
			Packages:    []string{"mariadb-server", "mariadb"},
			Service:     "mariadb",
		},
		{
			Name:        "yum",
			DetectArgs:  []string{"yum", "--version"},
			UpdateArgs:  []string{"yum", "makecache"},
			InstallArgs: []string{"yum", "install", "-y"},
			Packages:    []string{"mariadb-server", "mariadb"},
			Service:     "mariadb",
		},
		{
			Name:        "pacman",
			DetectArgs:  []string{"pacman", "--version"},
			UpdateArgs:  []string{"pacman", "-Sy"},
			InstallArgs: []string{"pacman", "-S", "--noconfirm"},
			Packages:    []string{"mariadb"},
			Service:     "mariadb",
			InitDataDir: true,
		},
		{
			Name:        "zypper",
			DetectArgs:  []string{"zypper", "--version"},
			UpdateArgs:  []string{"zypper", "refresh"},
			InstallArgs: []string{"zypper", "--non-interactive", "install"},
			Packages:    []string{"mariadb", "mariadb-client"},
			Service:     "mariadb",
		},
		{
			Name:        "apk",
			DetectArgs:  []string{"apk", "--version"},
			UpdateArgs:  []string{"apk", "update"},
			InstallArgs: []string{"apk", "add"},
			Packages:    []string{"mariadb", "mariadb-client", "mariadb-openrc"},
			Service:     "mariadb",
			InitDataDir: true,
			OpenRC:      true,
		},
	}
}

// SupportedNames returns the names of all catalogued package managers
// in priority order. Used in user-facing detection failure messages.
func SupportedNames() []string {
	catalogue := Catalogue()
	res := make([]string, len(catalogue))
	for i, p := range catalogue {
		res[i] = p.Name
	}
	return res
}
