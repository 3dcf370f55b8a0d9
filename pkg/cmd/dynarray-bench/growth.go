// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/growkit/dynarray/pkg/dynarray"
)

type growthFlags struct {
	pushes  int
	initial int
	factor  float64
	bias    int
}

func makeGrowthCommand() *cobra.Command {
	var flags growthFlags
	command := &cobra.Command{
		Use:   "growth (flags)",
		Short: "Print the deterministic capacity schedule for a growth configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := growthSchedule(flags)
			if err != nil {
				return err
			}
			printGrowthSchedule(cmd.OutOrStdout(), flags, schedule)
			return nil
		},
	}
	command.Flags().IntVar(&flags.pushes, "pushes", 64, "number of appends to simulate")
	command.Flags().IntVar(&flags.initial, "initial", 1, "initial capacity")
	command.Flags().Float64Var(&flags.factor, "factor", 2, "growth factor")
	command.Flags().IntVar(&flags.bias, "bias", 0, "growth bias")
	return command
}

// growthSchedule appends flags.pushes elements and samples the capacity
// after each one. The container itself is the source of truth; nothing is
// simulated separately.
func growthSchedule(flags growthFlags) ([]int, error) {
	arr, err := dynarray.New[int64](
		dynarray.WithInitialCapacity[int64](flags.initial),
		dynarray.WithGrowthFactor[int64](flags.factor),
		dynarray.WithGrowthBias[int64](flags.bias),
	)
	if err != nil {
		return nil, err
	}
	defer arr.Destroy()

	schedule := make([]int, 0, flags.pushes+1)
	schedule = append(schedule, arr.Cap())
	for i := 0; i < flags.pushes; i++ {
		if err := arr.PushBack(int64(i)); err != nil {
			return nil, err
		}
		schedule = append(schedule, arr.Cap())
	}
	return schedule, nil
}

func printGrowthSchedule(w io.Writer, flags growthFlags, schedule []int) {
	fmt.Fprintf(w, "capacity schedule: initial=%d factor=%v bias=%d\n\n",
		flags.initial, flags.factor, flags.bias)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"push", "size", "capacity"})
	last := schedule[0]
	for i, c := range schedule[1:] {
		if c == last {
			continue
		}
		table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(i + 1), fmt.Sprintf("%d -> %d", last, c)})
		last = c
	}
	table.Render()
	fmt.Fprintln(w)

	curve := make([]float64, len(schedule))
	for i, c := range schedule {
		curve[i] = float64(c)
	}
	fmt.Fprintln(w, asciigraph.Plot(curve,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("capacity per push")))
}
