package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/internal/ioconfig"
	"github.com/onestep/osimport/internal/ioflows"
	"github.com/spf13/cobra"
)

// getFlowsCmd returns the flows command.
func getFlowsCmd() *cobra.Command {
	flowsCmd := &cobra.Command{
		Use:   "flows",
		Short: "List the known import flows",
		Long: `List every import flow osimport knows about, with the file headers
each one requires. Builtin flows can be adjusted and new ones defined
in flows.yaml in the config directory.`,
		RunE: runFlows,
	}

	return flowsCmd
}

func runFlows(_ *cobra.Command, _ []string) error {
	flowsPath, err := ioconfig.GetDefaultFlowsPath()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	all, err := ioflows.Load(flowsPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := all[name]
		gn.Info("<em>%s</em>", name)
		gn.Info("  required columns: %s",
			strings.Join(f.RequiredHeaders(), ", "))
		if f.Members != "" {
			gn.Info("  leaders column:   %s", f.Header(f.Members))
		}
		fmt.Println()
	}

	return nil
}
