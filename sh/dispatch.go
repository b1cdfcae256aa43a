package sh

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// SequentialEnv checks if the SH_SEQUENTIAL environment variable is set.
// When set, kernel launches run every block on the calling goroutine instead
// of the worker pool. This is useful for testing and debugging.
func SequentialEnv() bool {
	val := os.Getenv("SH_SEQUENTIAL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Host describes the machine kernels are launched on.
type Host struct {
	Arch     string
	CPUs     int
	Features []string
}

// String returns a short human-readable summary, e.g. "amd64/16 [avx2 fma]".
func (h Host) String() string {
	return h.Arch + "/" + strconv.Itoa(h.CPUs) + " [" + strings.Join(h.Features, " ") + "]"
}

// HostReport returns the detected CPU features relevant to the kernels'
// floating-point throughput.
func HostReport() Host {
	h := Host{
		Arch: runtime.GOARCH,
		CPUs: runtime.GOMAXPROCS(0),
	}
	add := func(name string, ok bool) {
		if ok {
			h.Features = append(h.Features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.1", cpu.X86.HasSSE41)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("fma", cpu.X86.HasFMA)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("fp", cpu.ARM64.HasFP)
		add("atomics", cpu.ARM64.HasATOMICS)
		add("sve", cpu.ARM64.HasSVE)
	}
	return h
}
