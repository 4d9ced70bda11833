//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// runCLI builds the binary and runs one pipeline subcommand.
func runCLI(args ...string) error {
	mg.Deps(Build)
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Fetch downloads raw filings from EDGAR. Companies and the contact
// User-Agent come from the config file (fetch.ciks, fetch.user_agent).
// See prd009-acquisition for full requirements.
func Fetch() error {
	return runCLI("fetch")
}

// Extract runs batch section extraction over filings/raw/.
// See prd004-extraction for full requirements.
func Extract() error {
	return runCLI("extract", "--skip-extracted")
}

// Index ingests extracted records into the SQLite inventory.
// See prd006-inventory for full requirements.
func Index() error {
	return runCLI("index", "store")
}

// Consolidate flattens extracted records into a CSV per filing type.
// See prd007-consolidation for full requirements.
func Consolidate() error {
	return runCLI("consolidate")
}

// Measure scores MD&A text against the built-in lexicon.
// See prd008-measure for full requirements.
func Measure() error {
	return runCLI("measure")
}
