// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package dynarray

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// TestDataDriven drives the full operation surface from testdata/ops.
//
// Commands:
//
//	create [capacity=<n>] [factor=<f>] [bias=<n>] [max=<n>]
//	push <v>...
//	insert pos=<n> v=<v> | erase pos=<n>
//	get idx=<n> | set idx=<n> v=<v>
//	reserve n=<n> | resize n=<n>
//	clear | destroy | data | last-error
//
// State-changing commands print "size=<n> cap=<n>"; failures print the
// operation outcome.
func TestDataDriven(t *testing.T) {
	var a *Array[int]

	state := func() string {
		return fmt.Sprintf("size=%d cap=%d", a.Len(), a.Cap())
	}
	outcome := func(err error) string {
		if err != nil {
			return err.Error()
		}
		return state()
	}
	intArg := func(t *testing.T, d *datadriven.TestData, key string, def int) int {
		t.Helper()
		if !d.HasArg(key) {
			return def
		}
		var v int
		d.ScanArgs(t, key, &v)
		return v
	}

	datadriven.RunTest(t, "testdata/ops", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "create":
			opts := []Option[int]{
				WithInitialCapacity[int](intArg(t, d, "capacity", 1)),
				WithGrowthBias[int](intArg(t, d, "bias", 0)),
			}
			factor := 2.0
			if d.HasArg("factor") {
				var s string
				d.ScanArgs(t, "factor", &s)
				f, err := strconv.ParseFloat(s, 64)
				require.NoError(t, err)
				factor = f
			}
			opts = append(opts, WithGrowthFactor[int](factor))
			if d.HasArg("max") {
				opts = append(opts, WithMaxCapacity[int](intArg(t, d, "max", 0)))
			}
			var err error
			a, err = New[int](opts...)
			if err != nil {
				return err.Error()
			}
			return state()

		case "push":
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.Atoi(f)
				require.NoError(t, err)
				if err := a.PushBack(v); err != nil {
					return err.Error()
				}
			}
			return state()

		case "insert":
			return outcome(a.Insert(Position(intArg(t, d, "pos", 0)), intArg(t, d, "v", 0)))

		case "erase":
			return outcome(a.Erase(Position(intArg(t, d, "pos", 0))))

		case "get":
			v, err := a.Get(intArg(t, d, "idx", 0))
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("v=%d", v)

		case "set":
			return outcome(a.Set(intArg(t, d, "idx", 0), intArg(t, d, "v", 0)))

		case "reserve":
			return outcome(a.Reserve(intArg(t, d, "n", 0)))

		case "resize":
			return outcome(a.Resize(intArg(t, d, "n", 0)))

		case "clear":
			a.Clear()
			return state()

		case "destroy":
			a.Destroy()
			return state()

		case "data":
			if a.Empty() {
				return "(empty)"
			}
			var b strings.Builder
			for i, v := range a.Data() {
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%d", v)
			}
			return b.String()

		case "last-error":
			if err := a.LastError(); err != nil {
				return err.Error()
			}
			return "<nil>"

		default:
			t.Fatalf("unknown command: %s", d.Cmd)
			return ""
		}
	})
}
