package ui

import "testing"

// Theme tests mutate the package-level theme and do not run in parallel.

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"neon", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme(true)
	if got := GetCurrentTheme(); got.Name != "none" || got.Colored {
		t.Errorf("InitTheme(true) -> %+v, want NoColorTheme", got)
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme with NO_COLOR set -> %q, want none", got)
	}
}

func TestTheme_StrongHonorsColored(t *testing.T) {
	if !DarkTheme.Strong(DarkTheme.Accent).GetBold() {
		t.Error("DarkTheme.Strong should be bold")
	}
	if NoColorTheme.Strong(NoColorTheme.Accent).GetBold() {
		t.Error("NoColorTheme.Strong should not be bold")
	}
}
