// Package monitor exposes a running simulation over HTTP: current slot
// progress, process resource usage, and Go's built-in profiler. Grounded
// on sarchlab-akita's monitoring/monitor.go, trimmed to the read-only
// subset that makes sense for a simulator with no pausable engine to
// control (spec.md §6.2's domain-stack wiring).
package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"

	// Registers the /debug/pprof/* handlers on http.DefaultServeMux.
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
)

// Status is a snapshot of simulation progress, refreshed by the driver
// once per slot via ReportSlot.
type Status struct {
	CurrentSlot int    `json:"current_slot"`
	TotalSlots  int    `json:"total_slots"`
	Semantics   string `json:"semantics"`
}

// Monitor serves a running simulation's status and profiling endpoints.
type Monitor struct {
	mu     sync.Mutex
	status Status
}

// New creates an idle Monitor.
func New() *Monitor {
	return &Monitor{}
}

// ReportSlot updates the status snapshot served at /status. Called by
// the simulator driver once per slot (spec.md §6.2).
func (m *Monitor) ReportSlot(slot, totalSlots int, semantics string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = Status{CurrentSlot: slot, TotalSlots: totalSlots, Semantics: semantics}
}

func (m *Monitor) snapshot() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Serve starts the HTTP monitoring server on addr (host:port, or ":0"
// for a random port) in a background goroutine and returns the address
// it bound to. If openBrowser is true, it also opens the status page in
// the user's default browser via github.com/pkg/browser.
func (m *Monitor) Serve(addr string, openBrowser bool) (string, error) {
	r := mux.NewRouter()
	r.HandleFunc("/status", m.handleStatus)
	r.HandleFunc("/debug/gopsutil", m.handleResourceUsage)
	r.HandleFunc("/debug/cpuprofile", m.handleCPUProfile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("monitor: failed to bind %q: %w", addr, err)
	}

	boundAddr := listener.Addr().String()
	fmt.Fprintf(os.Stderr, "Log: [INFO] monitoring server listening on http://%s/status\n", boundAddr)

	go func() {
		if err := http.Serve(listener, r); err != nil {
			log.Printf("Log: [WARN] monitoring server stopped: %v", err)
		}
	}()

	if openBrowser {
		if err := browser.OpenURL("http://" + boundAddr + "/status"); err != nil {
			log.Printf("Log: [WARN] failed to open browser: %v", err)
		}
	}

	return boundAddr, nil
}

func (m *Monitor) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m.snapshot()); err != nil {
		log.Printf("Log: [WARN] failed to encode status: %v", err)
	}
}

type resourceUsage struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemoryRSS  uint64  `json:"memory_rss"`
}

func (m *Monitor) handleResourceUsage(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resourceUsage{
		CPUPercent: cpuPercent,
		MemoryRSS:  memInfo.RSS,
	})
}

// SnapshotProfile captures a one-second CPU profile and parses it with
// google/pprof/profile, mirroring the teacher's /api/profile endpoint.
func SnapshotProfile() (*profile.Profile, error) {
	buf := bytes.NewBuffer(nil)
	if err := pprof.StartCPUProfile(buf); err != nil {
		return nil, err
	}
	time.Sleep(time.Second)
	pprof.StopCPUProfile()
	return profile.ParseData(buf.Bytes())
}

func (m *Monitor) handleCPUProfile(w http.ResponseWriter, _ *http.Request) {
	prof, err := SnapshotProfile()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(prof); err != nil {
		log.Printf("Log: [WARN] failed to encode profile: %v", err)
	}
}
