package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_JSONWritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, LevelInfo)

	logger.Debug("hidden", "k", "v")
	logger.Info("league imported", "league_id", 4, "error", errors.New("boom"))
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %s", out)
	}
	for _, want := range []string{`"msg":"league imported"`, `"league_id":4`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatConsole, LevelDebug).With("component", "import")
	logger.Warn("dangling", "only-key")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "only-key") {
		t.Fatalf("expected dangling key to be logged: %s", buf.String())
	}

	var nilLogger *Logger
	nilLogger.Info("does not panic")
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", raw, got, want)
		}
	}
	if ParseFormat("Console") != FormatConsole {
		t.Fatalf("expected console format")
	}
	if ParseFormat("text") != FormatJSON {
		t.Fatalf("expected json fallback")
	}
}
