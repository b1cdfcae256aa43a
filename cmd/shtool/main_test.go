package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sphharm/sh"
	"github.com/ajroetker/go-sphharm/sh/contrib/sphere"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "float64", cfg.Precision)
	assert.Equal(t, 4, cfg.MaxL)
	assert.Equal(t, SamplingConfig{Longitudes: 64, Latitudes: 33, Directions: 1024}, cfg.Sampling)
	assert.Equal(t, BatchConfig{X: 1, Y: 1, Z: 1}, cfg.Batch)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shtool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"precision: float32\nmax_l: 2\nsampling:\n  longitudes: 8\n  latitudes: 5\n"), 0o644))
	t.Setenv("SHTOOL_MAX_L", "3")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "float32", cfg.Precision)
	assert.Equal(t, 3, cfg.MaxL, "environment overrides the file")
	assert.Equal(t, 8, cfg.Sampling.Longitudes)
	assert.Equal(t, 5, cfg.Sampling.Latitudes)
	assert.Equal(t, 1024, cfg.Sampling.Directions)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			Precision: "float64",
			MaxL:      2,
			Sampling:  SamplingConfig{Longitudes: 4, Latitudes: 3, Directions: 16},
			Batch:     BatchConfig{X: 1, Y: 1, Z: 1},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"precision", func(c *Config) { c.Precision = "float16" }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"max_l", func(c *Config) { c.MaxL = -1 }},
		{"longitudes", func(c *Config) { c.Sampling.Longitudes = 0 }},
		{"latitudes", func(c *Config) { c.Sampling.Latitudes = 1 }},
		{"directions", func(c *Config) { c.Sampling.Directions = 0 }},
		{"batch", func(c *Config) { c.Batch.Y = 0 }},
	}

	cfg := valid()
	require.NoError(t, validateConfig(&cfg))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, validateConfig(&cfg))
		})
	}
}

func TestConfigCommand(t *testing.T) {
	out := run(t, "config", "--precision", "float32", "--workers", "2")

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "float32", cfg.Precision)
	assert.Equal(t, 2, cfg.Workers)
}

func TestProductCommand(t *testing.T) {
	out := run(t, "product", "--lhs", "1,0,0,0", "--rhs", "1,0,0,0")
	// Y_0^0 * Y_0^0 = Y_0^0 / sqrt(4pi).
	assert.Contains(t, out, "l=0 m=+0 +0.282094791774")
}

func TestProductCommandRejectsIncompleteExpansion(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"product", "--lhs", "1,0,0", "--rhs", "1,0,0"})
	assert.Error(t, root.Execute())
}

func TestSampleCommandWritesBuffers(t *testing.T) {
	dir := t.TempDir()
	pointsPath := filepath.Join(dir, "points.bin")
	indicesPath := filepath.Join(dir, "indices.bin")
	metricsPath := filepath.Join(dir, "shtool.prom")

	run(t, "sample", "--l", "1", "--m", "0", "--longitudes", "4", "--latitudes", "3",
		"--precision", "float32", "-o", pointsPath, "--indices", indicesPath,
		"--metrics-file", metricsPath)

	tess := sh.Dim2{X: 4, Y: 3}
	raw, err := os.ReadFile(pointsPath)
	require.NoError(t, err)
	points := make([]sh.Point[float32], sphere.PointCount(tess))
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, points))

	// Latitude 0 is the north pole, where Y_1^0 = sqrt(3/4pi).
	assert.InDelta(t, 0.4886025, points[0].Value, 1e-6)
	assert.InDelta(t, -0.4886025, points[2].Value, 1e-6)

	raw, err = os.ReadFile(indicesPath)
	require.NoError(t, err)
	assert.Len(t, raw, 4*sphere.IndexCount(tess))

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `shtool_kernel_launches_total{kernel="sample",precision="float32"} 1`)
}

func TestReconstructCommandBatched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.bin")
	run(t, "reconstruct", "--coefficients", "1,2", "--batch-x", "2",
		"--longitudes", "3", "--latitudes", "2", "-o", path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	points := make([]sh.Point[float64], 2*6)
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, points))

	y00 := sh.Normalization[float64](0, 0)
	for i, p := range points {
		want := y00
		if i >= 6 {
			want = 2 * y00
		}
		assert.InDelta(t, want, p.Value, 1e-12, "point %d", i)
	}
}

func TestProjectCommand(t *testing.T) {
	out := run(t, "project", "--l", "2", "--m", "-1", "--max-l", "2", "--directions", "256")
	assert.Contains(t, out, "l=2 m=-1 +1.0000000000")
}
