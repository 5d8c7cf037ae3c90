// Package chromebrowser locates a Chrome/Chromium binary and holds the launch
// flags shared by every capture engine.
package chromebrowser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/user/sparkstudio/pkg/ports"
)

// ResolveChromePath picks the browser binary: explicitPath (--chrome-path),
// then CHROME_PATH, then the first Chromium/Chrome found in the platform's
// usual locations. It returns "" when nothing is found.
func ResolveChromePath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if envPath := os.Getenv("CHROME_PATH"); envPath != "" {
		return envPath
	}
	return findSystemChrome()
}

// Locate is ResolveChromePath plus an existence check. A configured path that
// does not exist and an empty system lookup both yield ports.ErrBrowserNotFound.
func Locate(explicitPath string) (string, error) {
	path := ResolveChromePath(explicitPath)
	if path == "" {
		return "", ports.ErrBrowserNotFound
	}
	if resolved := resolveExecutable(path); resolved != "" {
		return resolved, nil
	}
	return "", fmt.Errorf("%s: %w", path, ports.ErrBrowserNotFound)
}

// systemCandidates lists binaries to look for, Chromium before Chrome.
func systemCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
		}
	case "linux":
		return []string{
			"chromium",
			"chromium-browser",
			"google-chrome-stable",
			"google-chrome",
		}
	case "windows":
		var out []string
		for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
			base := os.Getenv(env)
			if base == "" {
				continue
			}
			out = append(out,
				base+"\\Chromium\\Application\\chrome.exe",
				base+"\\Google\\Chrome\\Application\\chrome.exe",
			)
		}
		return out
	}
	return nil
}

func findSystemChrome() string {
	for _, candidate := range systemCandidates() {
		if path := resolveExecutable(candidate); path != "" {
			return path
		}
	}
	return ""
}

// resolveExecutable stats absolute paths and looks bare names up in PATH.
func resolveExecutable(nameOrPath string) string {
	if isAbsolute(nameOrPath) {
		if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
			return nameOrPath
		}
		return ""
	}
	if path, err := exec.LookPath(nameOrPath); err == nil {
		return path
	}
	return ""
}

func isAbsolute(p string) bool {
	return len(p) > 0 && (p[0] == '/' || (len(p) > 1 && p[1] == ':'))
}
