// Copyright 2026 The Dynarray Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultSeed         = 1
	defaultElementBytes = 8
)

// workloadConfig describes a seeded mixed workload. Growth settings mirror
// the container options; op counts say how many of each operation to issue.
type workloadConfig struct {
	Seed            int64     `yaml:"seed"`
	InitialCapacity int       `yaml:"initial_capacity"`
	GrowthFactor    float64   `yaml:"growth_factor"`
	GrowthBias      int       `yaml:"growth_bias"`
	MaxCapacity     int       `yaml:"max_capacity"`
	ElementBytes    int       `yaml:"element_bytes"`
	Ops             opsConfig `yaml:"ops"`
}

type opsConfig struct {
	Push   int `yaml:"push"`
	Insert int `yaml:"insert"`
	Erase  int `yaml:"erase"`
	Get    int `yaml:"get"`
	Set    int `yaml:"set"`
}

func defaultWorkload() *workloadConfig {
	return &workloadConfig{
		Seed:            defaultSeed,
		InitialCapacity: 1,
		GrowthFactor:    2,
		GrowthBias:      0,
		ElementBytes:    defaultElementBytes,
		Ops: opsConfig{
			Push:   4096,
			Insert: 256,
			Erase:  256,
			Get:    1024,
			Set:    512,
		},
	}
}

// loadWorkload reads a workload description, applying defaults for any
// field the file leaves unset.
func loadWorkload(path string) (*workloadConfig, error) {
	cfg := defaultWorkload()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing workload %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid workload %s", path)
	}
	return cfg, nil
}

func (c *workloadConfig) validate() error {
	if c.ElementBytes < 1 {
		return errors.Newf("element_bytes must be at least 1: %d", c.ElementBytes)
	}
	if c.Ops.Push < 0 || c.Ops.Insert < 0 || c.Ops.Erase < 0 || c.Ops.Get < 0 || c.Ops.Set < 0 {
		return errors.New("op counts cannot be negative")
	}
	if c.total() == 0 {
		return errors.New("workload has no operations")
	}
	return nil
}

func (c *workloadConfig) total() int {
	return c.Ops.Push + c.Ops.Insert + c.Ops.Erase + c.Ops.Get + c.Ops.Set
}
