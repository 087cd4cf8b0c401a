package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Rerun", km.Rerun},
		{"Pause", km.Pause},
		{"Toggle", km.Toggle},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have a help description", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	want := map[string]bool{"q": false, "ctrl+c": false}
	for _, k := range km.Quit.Keys() {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("expected Quit binding to include %q", k)
		}
	}
}

func TestKeyMap_HelpListsEveryBinding(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", got)
	}
	if full := km.FullHelp(); len(full) != 1 || len(full[0]) != 4 {
		t.Errorf("FullHelp() = %d groups, want 1 group of 4", len(full))
	}
}
