package main

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/matrix"
	"github.com/ajroetker/go-sphharm/sh/contrib/product"
	"github.com/ajroetker/go-sphharm/sh/contrib/sphere"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log_level",
	"workers":      "workers",
	"precision":    "precision",
	"metrics-file": "metrics_file",
	"output":       "output",
	"max-l":        "max_l",
	"longitudes":   "sampling.longitudes",
	"latitudes":    "sampling.latitudes",
	"directions":   "sampling.directions",
	"batch-x":      "batch.x",
	"batch-y":      "batch.y",
	"batch-z":      "batch.z",
}

// bindFlags binds every flag of flags that has a config key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("longitudes", 64, "longitude tessellations")
	cmd.Flags().Int("latitudes", 33, "latitude tessellations, poles included")
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("batch-x", 1, "instances along x")
	cmd.Flags().Int("batch-y", 1, "instances along y")
	cmd.Flags().Int("batch-z", 1, "instances along z")
}

func (a *app) tessellations() sh.Dim2 {
	return sh.Dim2{X: a.cfg.Sampling.Longitudes, Y: a.cfg.Sampling.Latitudes}
}

func (a *app) batch() sh.Dim3 {
	return sh.Dim3{X: a.cfg.Batch.X, Y: a.cfg.Batch.Y, Z: a.cfg.Batch.Z}
}

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print host and coefficient layout information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host:       %s\n", sh.HostReport())
			fmt.Fprintf(out, "workers:    %d\n", a.pool.NumWorkers())
			fmt.Fprintf(out, "sequential: %t\n", sh.SequentialEnv())
			fmt.Fprintf(out, "precision:  %s\n", a.cfg.Precision)

			maxL := a.cfg.MaxL
			fmt.Fprintf(out, "max_l %d -> %d coefficients\n", maxL, sh.CoefficientCount(maxL))
			for i := range sh.CoefficientCount(maxL) {
				l, m := sh.DegreeOrder(i)
				fmt.Fprintf(out, "  %3d: l=%d m=%+d K=%.9g\n", i, l, m, sh.Normalization[float64](l, m))
			}
			return nil
		},
	}
}

func newSampleCommand(a *app) *cobra.Command {
	var l, m int
	var indicesPath string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample one basis function Y_l^m over the sphere",
		RunE: func(cmd *cobra.Command, args []string) error {
			if l < 0 || m < -l || m > l {
				return errors.Errorf("invalid degree/order l=%d m=%d", l, m)
			}
			if a.cfg.Precision == "float32" {
				return runSample[float32](a, l, m, indicesPath)
			}
			return runSample[float64](a, l, m, indicesPath)
		},
	}
	cmd.Flags().IntVar(&l, "l", 0, "degree")
	cmd.Flags().IntVar(&m, "m", 0, "order, -l <= m <= l")
	cmd.Flags().StringVar(&indicesPath, "indices", "", "write the uint32 index buffer to this path")
	addSamplingFlags(cmd)
	return cmd
}

func runSample[T sh.Floats](a *app, l, m int, indicesPath string) error {
	tess := a.tessellations()
	points := make([]sh.Point[T], sphere.PointCount(tess))
	indices := make([]uint32, sphere.IndexCount(tess))

	start := time.Now()
	sphere.Sample(a.pool, l, m, tess, points, indices)
	elapsed := a.metrics.observe("sample", a.cfg.Precision, tess.Size(), start)

	lo, hi := valueRange(points)
	a.log.WithFields(logrus.Fields{
		"kernel":        "sample",
		"l":             l,
		"m":             m,
		"tessellations": fmt.Sprintf("%dx%d", tess.X, tess.Y),
		"min":           lo,
		"max":           hi,
		"duration":      elapsed,
	}).Info("sampled basis function")

	if err := writeBuffer(a.cfg.Output, points); err != nil {
		return err
	}
	return writeBuffer(indicesPath, indices)
}

func newReconstructCommand(a *app) *cobra.Command {
	var coefficients []float64
	var indicesPath string
	var baseIndex uint32

	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct expansions over the sphere from their coefficients",
		Long: "Reconstruct one expansion per batch instance. The coefficients of all\n" +
			"instances are concatenated instance-major; each instance gets the same\n" +
			"square number of coefficients.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Precision == "float32" {
				return runReconstruct(a, convert[float32](coefficients), indicesPath, baseIndex)
			}
			return runReconstruct(a, coefficients, indicesPath, baseIndex)
		},
	}
	cmd.Flags().Float64SliceVar(&coefficients, "coefficients", []float64{1}, "comma-separated expansion coefficients")
	cmd.Flags().StringVar(&indicesPath, "indices", "", "write the uint32 index buffer to this path")
	cmd.Flags().Uint32Var(&baseIndex, "base-index", 0, "offset added to every emitted index")
	addSamplingFlags(cmd)
	addBatchFlags(cmd)
	return cmd
}

func runReconstruct[T sh.Floats](a *app, coefficients []T, indicesPath string, baseIndex uint32) error {
	dims := a.batch()
	instances := dims.Volume()
	if len(coefficients)%instances != 0 {
		return errors.Errorf("%d coefficients do not split into %d instances", len(coefficients), instances)
	}
	coefficientCount := len(coefficients) / instances
	maxL := sh.MaximumDegree(coefficientCount)
	if sh.CoefficientCount(maxL) != coefficientCount {
		return errors.Errorf("%d coefficients per instance is not a complete expansion (want a square number)", coefficientCount)
	}

	tess := a.tessellations()
	points := make([]sh.Point[T], instances*sphere.PointCount(tess))
	indices := make([]uint32, instances*sphere.IndexCount(tess))

	start := time.Now()
	kernel := "sample_sum"
	if instances == 1 {
		sphere.SampleSum(a.pool, coefficientCount, tess, coefficients, points, indices, baseIndex)
	} else {
		kernel = "sample_sums"
		sphere.SampleSums(a.pool, dims, coefficientCount, tess, coefficients, points, indices, baseIndex)
	}
	elapsed := a.metrics.observe(kernel, a.cfg.Precision, len(points)*coefficientCount, start)

	lo, hi := valueRange(points)
	a.log.WithFields(logrus.Fields{
		"kernel":        kernel,
		"maxL":          maxL,
		"instances":     instances,
		"tessellations": fmt.Sprintf("%dx%d", tess.X, tess.Y),
		"min":           lo,
		"max":           hi,
		"duration":      elapsed,
	}).Info("reconstructed expansion")

	if err := writeBuffer(a.cfg.Output, points); err != nil {
		return err
	}
	return writeBuffer(indicesPath, indices)
}

func newMatrixCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build the design matrix of Fibonacci-lattice directions",
		Long: "Build the column-major vectors x coefficients design matrix. Every batch\n" +
			"instance uses its own copy of the direction set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Precision == "float32" {
				return runMatrix[float32](a)
			}
			return runMatrix[float64](a)
		},
	}
	cmd.Flags().Int("max-l", 4, "maximum degree")
	cmd.Flags().Int("directions", 1024, "number of directions")
	addBatchFlags(cmd)
	return cmd
}

func runMatrix[T sh.Floats](a *app) error {
	dims := a.batch()
	instances := dims.Volume()
	vectorCount := a.cfg.Sampling.Directions
	coefficientCount := sh.CoefficientCount(a.cfg.MaxL)

	lattice := sphere.FibonacciDirections[T](vectorCount)
	directions := make([]sh.Point[T], 0, instances*vectorCount)
	for range instances {
		directions = append(directions, lattice...)
	}
	out := make([]T, instances*vectorCount*coefficientCount)

	start := time.Now()
	kernel := "matrix"
	if instances == 1 {
		matrix.CalculateMatrix(a.pool, vectorCount, coefficientCount, directions, out)
	} else {
		kernel = "matrices"
		matrix.CalculateMatrices(a.pool, dims, vectorCount, coefficientCount, directions, out)
	}
	elapsed := a.metrics.observe(kernel, a.cfg.Precision, len(out), start)

	a.log.WithFields(logrus.Fields{
		"kernel":     kernel,
		"maxL":       a.cfg.MaxL,
		"directions": vectorCount,
		"instances":  instances,
		"duration":   elapsed,
	}).Info("built design matrix")

	return writeBuffer(a.cfg.Output, out)
}

func newProjectCommand(a *app) *cobra.Command {
	var l, m int

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a sampled basis function back onto coefficients",
		Long: "Sample Y_l^m at Fibonacci-lattice directions and fit an expansion of\n" +
			"degree max-l by least squares. The fit should recover a single unit\n" +
			"coefficient when l <= max-l. Projection always runs in float64.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if l < 0 || m < -l || m > l {
				return errors.Errorf("invalid degree/order l=%d m=%d", l, m)
			}
			directions := sphere.FibonacciDirections[float64](a.cfg.Sampling.Directions)
			samples := make([]float64, len(directions))
			for i, d := range directions {
				samples[i] = sh.Evaluate(l, m, d.Theta, d.Phi)
			}

			start := time.Now()
			coefficients, err := matrix.Project(a.pool, directions, samples, a.cfg.MaxL)
			if err != nil {
				return err
			}
			elapsed := a.metrics.observe("project", "float64", len(directions)*len(coefficients), start)

			want := make([]float64, len(coefficients))
			if index := sh.CoefficientIndex(l, m); index < len(want) {
				want[index] = 1
			}
			a.log.WithFields(logrus.Fields{
				"kernel":     "project",
				"maxL":       a.cfg.MaxL,
				"directions": len(directions),
				"residualL2": sh.L2Distance(coefficients, want),
				"duration":   elapsed,
			}).Info("projected samples")

			out := cmd.OutOrStdout()
			for i, c := range coefficients {
				dl, dm := sh.DegreeOrder(i)
				fmt.Fprintf(out, "%3d l=%d m=%+d %+.12f\n", i, dl, dm, c)
			}
			return writeBuffer(a.cfg.Output, coefficients)
		},
	}
	cmd.Flags().IntVar(&l, "l", 0, "degree of the sampled basis function")
	cmd.Flags().IntVar(&m, "m", 0, "order of the sampled basis function")
	cmd.Flags().Int("max-l", 4, "maximum degree of the fit")
	cmd.Flags().Int("directions", 1024, "number of sample directions")
	return cmd
}

func newProductCommand(a *app) *cobra.Command {
	var lhs, rhs []float64

	cmd := &cobra.Command{
		Use:   "product",
		Short: "Multiply two expansions in coefficient space",
		Long: "Multiply lhs and rhs coefficient vectors of equal square length. Products\n" +
			"are accumulated in float64 regardless of --precision.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lhs) != len(rhs) {
				return errors.Errorf("lhs has %d coefficients, rhs has %d", len(lhs), len(rhs))
			}
			coefficientCount := len(lhs)
			if sh.CoefficientCount(sh.MaximumDegree(coefficientCount)) != coefficientCount {
				return errors.Errorf("%d coefficients is not a complete expansion (want a square number)", coefficientCount)
			}

			var out []float64
			if a.cfg.Precision == "float32" {
				out = runProduct(a, convert[float32](lhs), convert[float32](rhs))
			} else {
				out = runProduct(a, lhs, rhs)
			}

			w := cmd.OutOrStdout()
			for i, c := range out {
				if math.Abs(c) < 1e-12 {
					continue
				}
				l, m := sh.DegreeOrder(i)
				fmt.Fprintf(w, "%3d l=%d m=%+d %+.12f\n", i, l, m, c)
			}
			return writeBuffer(a.cfg.Output, out)
		},
	}
	cmd.Flags().Float64SliceVar(&lhs, "lhs", []float64{1}, "comma-separated lhs coefficients")
	cmd.Flags().Float64SliceVar(&rhs, "rhs", []float64{1}, "comma-separated rhs coefficients")
	return cmd
}

func runProduct[T sh.Floats](a *app, lhs, rhs []T) []float64 {
	coefficientCount := len(lhs)
	out := make([]float64, coefficientCount)

	start := time.Now()
	product.Product(a.pool, coefficientCount, lhs, rhs, out)
	elapsed := a.metrics.observe("product", a.cfg.Precision, coefficientCount*coefficientCount*coefficientCount, start)

	a.log.WithFields(logrus.Fields{
		"kernel":   "product",
		"maxL":     sh.MaximumDegree(coefficientCount),
		"duration": elapsed,
	}).Info("multiplied expansions")
	return out
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return errors.Wrap(err, "encode config")
			}
			return enc.Close()
		},
	}
}

func convert[T sh.Floats](values []float64) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

func valueRange[T sh.Floats](points []sh.Point[T]) (lo, hi T) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	return lo, hi
}
