package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info quiet", false, func(l *log.Logger) { l.Info("test") }, true},
		{"debug quiet", false, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug verbose", true, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, tt.verbose))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault(nil) != log.Default() {
		t.Error("OrDefault(nil) should return log.Default()")
	}

	l := New(&bytes.Buffer{}, false)
	if OrDefault(l) != l {
		t.Error("OrDefault(l) should return l")
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	Component(New(&buf, false), "mixstack").Info("bound")

	if !strings.Contains(buf.String(), "mixstack") {
		t.Errorf("Expected prefix in output, got %q", buf.String())
	}
}
