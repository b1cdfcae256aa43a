// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command shtool runs the spherical harmonic kernels from the command line.
//
// Usage:
//
//	shtool info
//	shtool sample --l 2 --m 1 --longitudes 64 --latitudes 33 -o y21.bin
//	shtool reconstruct --coefficients 0.5,0,0.2,0 --indices mesh.idx -o mesh.bin
//	shtool matrix --max-l 4 --directions 1024 -o matrix.bin
//	shtool project --max-l 4 --directions 2048
//	shtool product --max-l 2 --lhs 1,0,0,0 --rhs 0,1,0,0
//	shtool config
//
// Buffers are written as raw little-endian arrays of the selected precision.
// Configuration is read from --config (YAML), then SHTOOL_* environment
// variables, then flags.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-sphharm/sh/contrib/workerpool"
)

// app carries the state shared by every subcommand once the root command's
// PersistentPreRunE has loaded the configuration.
type app struct {
	v       *viper.Viper
	cfg     *Config
	log     *logrus.Logger
	metrics *kernelMetrics
	pool    *workerpool.Pool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), metrics: newKernelMetrics()}
	var configPath string

	root := &cobra.Command{
		Use:           "shtool",
		Short:         "Evaluate, sample and project real spherical harmonics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v, configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = setupLogger(cfg.LogLevel)
			a.pool = workerpool.New(cfg.Workers)
			a.log.WithFields(logrus.Fields{
				"workers":   a.pool.NumWorkers(),
				"precision": cfg.Precision,
			}).Debug("configuration loaded")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			a.pool.Close()
			if err := a.metrics.writeTextfile(a.cfg.MetricsFile); err != nil {
				return err
			}
			if a.cfg.MetricsFile != "" {
				a.log.WithField("path", a.cfg.MetricsFile).Debug("metrics written")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	flags.String("precision", "float64", "buffer precision (float32 or float64)")
	flags.String("metrics-file", "", "write Prometheus textfile metrics to this path")
	flags.StringP("output", "o", "", "output file for raw buffers (default: no buffer output)")

	root.AddCommand(
		newInfoCommand(a),
		newSampleCommand(a),
		newReconstructCommand(a),
		newMatrixCommand(a),
		newProjectCommand(a),
		newProductCommand(a),
		newConfigCommand(a),
	)
	return root
}
