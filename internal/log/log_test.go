package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("invalid rule %q", "9")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "INFO: ") || !strings.Contains(out, "shown 2") {
		t.Fatalf("missing info line: %q", out)
	}
	if !strings.Contains(out, "ERROR: invalid rule \"9\"\n") {
		t.Fatalf("missing error line: %q", out)
	}

	buf.Reset()
	New(LevelDebug, &buf).Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG: ") {
		t.Fatalf("debug line missing at debug level: %q", buf.String())
	}
}
