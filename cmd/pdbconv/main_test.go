package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/molstruct/pkg/common"
)

const testdir = "../../pdb/testdata/"

func run(args ...string) (int, string) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	return execute(), buf.String()
}

var cmdTests = []struct {
	args   []string
	status int
	want   string
}{
	{[]string{"version"}, common.ExitSuccess, "pdbconv "},
	{[]string{"info", "--no-color", testdir + "small.pdb"}, common.ExitSuccess, "1ABC"},
	{[]string{"info", "--no-color", "/does/not/exist"}, common.ExitFailure, ""},
	{[]string{"info"}, common.ExitUsageError, ""},
	{[]string{"convert", "a", "b", "c"}, common.ExitUsageError, ""},
	{[]string{"info", "--bogus", testdir + "small.pdb"}, common.ExitUsageError, ""},
	{[]string{"batch", "-q"}, common.ExitUsageError, ""},
	{[]string{"--log-level", "chatty", "version"}, common.ExitFailure, ""},
}

func TestCommands(t *testing.T) {
	for _, tt := range cmdTests {
		status, out := run(tt.args...)
		if status != tt.status {
			t.Errorf("%v: status %d, want %d", tt.args, status, tt.status)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("%v: output %q missing %q", tt.args, out, tt.want)
		}
	}
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	status, _ := run("--log-level", "info", "batch", "-o", dir, "-j", "2",
		testdir+"small.pdb", testdir+"nmr.pdb")
	if status != common.ExitSuccess {
		t.Fatal("batch status", status)
	}
	status, _ = run("convert", filepath.Join(dir, "nmr.pdb"), filepath.Join(dir, "again.pdb"))
	if status != common.ExitSuccess {
		t.Error("convert status", status)
	}
}
