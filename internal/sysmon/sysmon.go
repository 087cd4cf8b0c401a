// Package sysmon samples system-wide CPU and memory usage and describes the
// machine a benchmark ran on.
package sysmon

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Environment describes the machine and runtime a report was produced on.
// Timings are only comparable between reports with similar environments.
type Environment struct {
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	Platform    string `json:"platform,omitempty"`
	CPUModel    string `json:"cpu_model,omitempty"`
	NumCPU      int    `json:"num_cpu"`
	GOMAXPROCS  int    `json:"gomaxprocs"`
	TotalMemory uint64 `json:"total_memory_bytes,omitempty"`
	Load        Stats  `json:"load"`
}

// Describe gathers the current Environment. Fields gopsutil cannot read on
// this platform are left empty.
func Describe() Environment {
	env := Environment{
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Load:       Sample(),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		env.CPUModel = infos[0].ModelName
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		env.TotalMemory = vmem.Total
	}
	if h, err := host.Info(); err == nil && h != nil {
		env.Platform = strings.TrimSpace(h.Platform + " " + h.PlatformVersion)
	}
	return env
}
