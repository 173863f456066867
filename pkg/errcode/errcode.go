// Package errcode enumerates error codes for udb failure classes.
package errcode

// Code identifies a failure class. Every fatal path maps to exactly one code.
type Code int

const (
	UnknownError Code = iota

	// Host/privilege errors
	PrivilegeError

	// Package manager errors
	DetectionError
	UpdateError
	InstallError
	ServiceStartError

	// Authentication errors
	AuthProbeError

	// SQL execution errors
	SQLClientMissingError
	SQLExecError

	// Provisioning errors
	SchemaCreateError
	UserCreateError
	SeedDataError

	// Verification errors
	ConnectivityError

	// Subprocess errors
	CommandSpawnError

	// Configuration errors
	ConfigFileError
)

var names = map[Code]string{
	UnknownError:          "UnknownError",
	PrivilegeError:        "PrivilegeError",
	DetectionError:        "DetectionError",
	UpdateError:           "UpdateError",
	InstallError:          "InstallError",
	ServiceStartError:     "ServiceStartError",
	AuthProbeError:        "AuthProbeError",
	SQLClientMissingError: "SQLClientMissingError",
	SQLExecError:          "SQLExecError",
	SchemaCreateError:     "SchemaCreateError",
	UserCreateError:       "UserCreateError",
	SeedDataError:         "SeedDataError",
	ConnectivityError:     "ConnectivityError",
	CommandSpawnError:     "CommandSpawnError",
	ConfigFileError:       "ConfigFileError",
}

func (c Code) String() string {
	if s, ok := names[c]; ok {
		return s
	}
	return "UnknownError"
}

// Coder is implemented by errors that carry a failure code.
type Coder interface {
	Code() Code
}

// Hinter is implemented by errors that carry actionable remediation
// text shown to the user on fatal paths.
type Hinter interface {
	Hint() string
}
