package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestDescribe(t *testing.T) {
	env := Describe()
	if env.GoVersion == "" || env.OS == "" || env.Arch == "" {
		t.Errorf("runtime fields should be set: %+v", env)
	}
	if env.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", env.NumCPU)
	}
	if env.GOMAXPROCS < 1 {
		t.Errorf("GOMAXPROCS = %d, want >= 1", env.GOMAXPROCS)
	}
	if env.Load.MemPercent < 0 || env.Load.MemPercent > 100 {
		t.Errorf("Load.MemPercent out of range: %f", env.Load.MemPercent)
	}
}
