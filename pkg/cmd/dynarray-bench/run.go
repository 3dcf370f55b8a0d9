// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/growkit/dynarray/pkg/dynarray"
)

func makeRunCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "run <workload.yaml>",
		Short: "Run the workload described by the YAML file and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadWorkload(args[0])
			if err != nil {
				return err
			}
			report, err := runWorkload(cfg)
			if err != nil {
				return err
			}
			report.print(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
	return command
}

type opStats struct {
	name   string
	count  int
	failed int
}

type growthEvent struct {
	atOp   int
	size   int
	oldCap int
	newCap int
}

type workloadReport struct {
	ops       []*opStats
	growth    []growthEvent
	capCurve  []float64
	finalSize int
	finalCap  int
	elapsed   time.Duration
}

// runWorkload issues the configured operations in a seeded random order
// against an Array[int64] and collects growth events by observing capacity
// before and after each operation.
func runWorkload(cfg *workloadConfig) (*workloadReport, error) {
	arr, err := dynarray.New[int64](
		dynarray.WithInitialCapacity[int64](cfg.InitialCapacity),
		dynarray.WithGrowthFactor[int64](cfg.GrowthFactor),
		dynarray.WithGrowthBias[int64](cfg.GrowthBias),
		dynarray.WithMaxCapacity[int64](cfg.MaxCapacity),
	)
	if err != nil {
		return nil, err
	}
	defer arr.Destroy()

	rng := rand.New(rand.NewSource(cfg.Seed))

	stats := map[string]*opStats{}
	var schedule []string
	addOp := func(name string, n int) {
		stats[name] = &opStats{name: name}
		for i := 0; i < n; i++ {
			schedule = append(schedule, name)
		}
	}
	addOp("push_back", cfg.Ops.Push)
	addOp("insert", cfg.Ops.Insert)
	addOp("erase", cfg.Ops.Erase)
	addOp("get", cfg.Ops.Get)
	addOp("set", cfg.Ops.Set)
	rng.Shuffle(len(schedule), func(i, j int) {
		schedule[i], schedule[j] = schedule[j], schedule[i]
	})

	report := &workloadReport{
		ops:      []*opStats{stats["push_back"], stats["insert"], stats["erase"], stats["get"], stats["set"]},
		capCurve: make([]float64, 0, len(schedule)+1),
	}
	report.capCurve = append(report.capCurve, float64(arr.Cap()))

	start := time.Now()
	for i, name := range schedule {
		oldCap := arr.Cap()
		var err error
		switch name {
		case "push_back":
			err = arr.PushBack(rng.Int63())
		case "insert":
			err = arr.Insert(dynarray.Position(rng.Intn(arr.Len()+1)), rng.Int63())
		case "erase":
			// Erasing from an empty array is a reportable outcome, counted
			// as a failure below.
			err = arr.Erase(dynarray.Position(rng.Intn(arr.Len() + 1)))
		case "get":
			_, err = arr.Get(rng.Intn(arr.Len() + 1))
		case "set":
			err = arr.Set(rng.Intn(arr.Len()+1), rng.Int63())
		}
		s := stats[name]
		s.count++
		if err != nil {
			s.failed++
		}
		if newCap := arr.Cap(); newCap != oldCap {
			report.growth = append(report.growth, growthEvent{
				atOp:   i,
				size:   arr.Len(),
				oldCap: oldCap,
				newCap: newCap,
			})
		}
		report.capCurve = append(report.capCurve, float64(arr.Cap()))
	}
	report.elapsed = time.Since(start)
	report.finalSize = arr.Len()
	report.finalCap = arr.Cap()
	return report, nil
}

func (r *workloadReport) print(w io.Writer, cfg *workloadConfig) {
	fmt.Fprintf(w, "workload: %d ops in %s (seed %d)\n\n", len(r.capCurve)-1, r.elapsed, cfg.Seed)

	opsTable := tablewriter.NewWriter(w)
	opsTable.SetAutoFormatHeaders(false)
	opsTable.SetAutoWrapText(false)
	opsTable.SetHeader([]string{"operation", "count", "failed"})
	for _, s := range r.ops {
		opsTable.Append([]string{s.name, strconv.Itoa(s.count), strconv.Itoa(s.failed)})
	}
	opsTable.Render()
	fmt.Fprintln(w)

	growthTable := tablewriter.NewWriter(w)
	growthTable.SetAutoFormatHeaders(false)
	growthTable.SetAutoWrapText(false)
	growthTable.SetHeader([]string{"growth event", "at op", "size", "capacity", "buffer"})
	for i, g := range r.growth {
		growthTable.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(g.atOp),
			strconv.Itoa(g.size),
			fmt.Sprintf("%d -> %d", g.oldCap, g.newCap),
			humanize.IBytes(uint64(g.newCap) * uint64(cfg.ElementBytes)),
		})
	}
	growthTable.Render()
	fmt.Fprintf(w, "(%d growth events)\n\n", len(r.growth))

	fmt.Fprintf(w, "final: size=%d capacity=%d (%s buffer)\n\n",
		r.finalSize, r.finalCap,
		humanize.IBytes(uint64(r.finalCap)*uint64(cfg.ElementBytes)))

	fmt.Fprintln(w, asciigraph.Plot(r.capCurve,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("capacity over operations")))
}
