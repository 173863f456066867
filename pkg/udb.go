// Package udb holds application-wide metadata for the udb CLI.
package udb

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is set by build flags.
	Build = "n/a"
)
