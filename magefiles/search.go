//go:build mage

package main

import (
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a search with the built-in lists.
// Extra CLI arguments can be passed in BILLQUERY_ARGS, e.g.
// BILLQUERY_ARGS="-f csv -v" mage search.
func Search() error {
	mg.Deps(Build)

	args := []string{"search"}
	if extra := os.Getenv("BILLQUERY_ARGS"); extra != "" {
		args = append(args, strings.Fields(extra)...)
	}
	return sh.RunV(binPath, args...)
}
