package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a report was produced on.
type Host struct {
	GOOS      string
	GOARCH    string
	NumCPU    int
	GoVersion string
	HasAVX2   bool
	HasSSE42  bool
	HasASIMD  bool
}

// HostInfo returns the current machine's description.
// Vector features are reported for context only; every searcher is portable
// Go.
func HostInfo() Host {
	return Host{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
		HasAVX2:   cpu.X86.HasAVX2,
		HasSSE42:  cpu.X86.HasSSE42,
		HasASIMD:  cpu.ARM64.HasASIMD,
	}
}

// Features lists the detected vector extensions, e.g. "avx2 sse4.2".
func (h Host) Features() []string {
	var f []string
	if h.HasAVX2 {
		f = append(f, "avx2")
	}
	if h.HasSSE42 {
		f = append(f, "sse4.2")
	}
	if h.HasASIMD {
		f = append(f, "asimd")
	}
	return f
}
