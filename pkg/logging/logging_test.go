package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogWhere(t *testing.T) {
	if logWhere("") != io.Discard {
		t.Error("empty should discard")
	}
	if logWhere("stdout") != os.Stdout {
		t.Error("stdout")
	}
}

func TestInitFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "x.log")
	if err := Init(fname, "debug"); err != nil {
		t.Fatal(err)
	}
	defer Init("", "info")
	Logger().Debug("hello from the test")
	if Logger().GetLevel() != logrus.DebugLevel {
		t.Error("level not set")
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello from the test") {
		t.Error("log file has", string(b))
	}
	if err := Init("", "loud"); err == nil {
		t.Error("bad level accepted")
	}
}
