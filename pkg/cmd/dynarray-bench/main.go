// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

// dynarray-bench exercises the dynarray public contract: it runs seeded
// mixed workloads against an Array and reports operation counts, growth
// events and the capacity curve. It is a consumer of the container, not
// part of it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func makeDynarrayBenchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "dynarray-bench [command] (flags)",
		Short: "dynarray-bench runs workloads against the dynarray container and reports its growth behavior.",
		Long: `dynarray-bench is a utility to observe the allocation behavior of the
dynarray container under configurable workloads. Use it to:

- run a seeded mixed workload described by a YAML file and summarize the
  operations performed, the growth events and the capacity curve.
- print the deterministic capacity schedule for a given growth
  configuration.

Typical usage:
    dynarray-bench run workload.yaml
        Run the workload described in workload.yaml and print the report.

    dynarray-bench growth --pushes=64 --factor=1.5 --bias=1
        Show the capacity schedule of 64 appends under the given growth
        configuration.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeRunCommand())
	command.AddCommand(makeGrowthCommand())

	return command
}

func main() {
	if err := makeDynarrayBenchCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
