// Package cmd implements the subcommands for compiling, validating,
// exporting, and inspecting funding configuration files.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default CLI configuration file.
	ConfigIdentifier = "config"
)
