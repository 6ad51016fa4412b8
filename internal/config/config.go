// Package config holds the "Global environment configuration" record of
// spec.md §9: everything the driver needs from the process environment,
// read once at CLI entry and threaded explicitly from there on — nothing
// under internal/ reads os.Getenv mid-run.
package config

import "os"

// Config is constructed once in cmd/idcode/main.go and passed by value (or
// pointer) to the driver; it is never mutated after construction.
type Config struct {
	// PBEncoderPath is the directory holding the external pseudo-Boolean
	// encoder binary, which the driver runs as PBEncoderPath/pbencoder.
	// Empty means "use the in-process sequential-counter
	// cardinality encoder" (the substitutable alternative spec.md §4.3
	// explicitly allows).
	PBEncoderPath string

	// ProjectDir is the repository root used for provenance headers
	// (git remote/branch/commit lookup). May be empty.
	ProjectDir string

	// Hostname is recorded in provenance headers.
	Hostname string

	// TempDir is where scoped temporary OPB/CNF files are created.
	TempDir string
}

// FromEnvironment builds a Config from the process environment and
// os.Hostname, applying the given overrides last. This is the only place
// environment variables are read.
func FromEnvironment(pbEncoderPath, projectDir, tempDir string) Config {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	if projectDir == "" {
		projectDir = os.Getenv("PROJECT_DIR")
	}
	if pbEncoderPath == "" {
		pbEncoderPath = os.Getenv("PBLIB_DIR")
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return Config{
		PBEncoderPath: pbEncoderPath,
		ProjectDir:    projectDir,
		Hostname:      host,
		TempDir:       tempDir,
	}
}
