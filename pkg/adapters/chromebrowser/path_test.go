package chromebrowser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/sparkstudio/pkg/ports"
)

func TestResolveChromePath_Precedence(t *testing.T) {
	t.Setenv("CHROME_PATH", "/env/chrome")

	if got := ResolveChromePath(""); got != "/env/chrome" {
		t.Errorf("expected CHROME_PATH to be used, got %s", got)
	}
	if got := ResolveChromePath("/explicit/chrome"); got != "/explicit/chrome" {
		t.Errorf("expected explicit path to take precedence, got %s", got)
	}
}

func TestResolveChromePath_SystemDefault(t *testing.T) {
	t.Setenv("CHROME_PATH", "")

	// Empty is valid when no browser is installed.
	t.Logf("system Chrome: %q", ResolveChromePath(""))
}

func TestLocate_MissingConfiguredPath(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "no-such-chrome"))
	if !errors.Is(err, ports.ErrBrowserNotFound) {
		t.Fatalf("expected ErrBrowserNotFound, got %v", err)
	}
}

func TestLocate_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Locate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
}

func TestResolveExecutable(t *testing.T) {
	if resolveExecutable("definitely-not-a-real-command-xyz123") != "" {
		t.Error("expected empty result for unknown command")
	}
	if resolveExecutable(t.TempDir()) != "" {
		t.Error("a directory is not an executable")
	}
}

func TestArgs(t *testing.T) {
	got := Args([]Flag{{Name: "hide-scrollbars"}, {Name: "force-device-scale-factor", Value: "1"}})
	want := []string{"--hide-scrollbars", "--force-device-scale-factor=1"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}
