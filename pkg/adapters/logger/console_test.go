package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/user/sparkstudio/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("test info %s", "a.png")
	log.Warn("test warn %s", "10s")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug line should be filtered at info level")
	}
	if out.String() != "test info a.png\n" {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "test warn 10s") {
		t.Errorf("expected warning on error stream, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &out).WithComponent("capture")

	log.Debug("test %dx%d", 1080, 1080)

	if out.String() != "[capture] test 1080x1080\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)

	log.Error("Failed")
	if out.Len() != 0 {
		t.Errorf("quiet logger wrote %q", out.String())
	}
}

func TestNewConsole_WritesToStderr(t *testing.T) {
	log := NewConsole(ports.LevelInfo)
	if log.out != os.Stderr || log.errOut != os.Stderr {
		t.Error("expected both streams on stderr")
	}
}
