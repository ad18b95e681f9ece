// Package main provides the osimport CLI application.
// osimport bulk-imports institutional records from delimited files into
// the records platform database.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
