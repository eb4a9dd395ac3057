package brokenio_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/molstruct/brokenio"
	"github.com/pkg/errors"
)

var tochop = [][]byte{
	[]byte("a"),
	[]byte("abc"),
	[]byte("abcdefghij"),
	[]byte("abcdefghijklmn"),
}

var longstring = "0123456789012345678901234567890123456789"

func newRdr(s string) *brokenio.Reader {
	return brokenio.NewReader(io.NopCloser(strings.NewReader(s)), 1)
}

// testFrac wipes out different fractions of the input buffer.
func testFrac(t *testing.T, inb []byte, frac float32) {
	s := make([]byte, len(inb))
	rdr := newRdr(string(inb))
	rdr.SetProbFail(1)
	rdr.SetFracFail(frac)
	n, err := rdr.Read(s)
	if !bytes.Equal(s[:n], inb[:n]) {
		t.Error("kept part changed", string(inb), "frac", frac)
	}
	nuls := bytes.Count(s, []byte{0})
	if nuls != len(s)-n {
		t.Errorf("%q frac %v: %d nulls but kept %d", inb, frac, nuls, n)
	}
	if (n < len(inb)) != (err != nil) {
		t.Errorf("%q frac %v: n %d err %v", inb, frac, n, err)
	}
	if err != nil && !errors.Is(err, brokenio.ErrBroken) {
		t.Error("error should be ErrBroken, got", err)
	}
}

func TestTrashing(t *testing.T) {
	for _, frac := range []float32{0, 0.3, 1} {
		for _, inb := range tochop {
			testFrac(t, inb, frac)
		}
	}
}

func TestZeroFile(t *testing.T) {
	for _, prob := range []float32{1, 0} {
		rdr := newRdr(longstring)
		rdr.SetProbZeroFile(prob)
		tmp := make([]byte, len(longstring))
		n, err := rdr.Read(tmp)
		if prob == 1 && (n != 0 || err != io.EOF) {
			t.Error("want empty file, got", n, err)
		}
		if prob == 0 && (n != len(longstring) || err != nil) {
			t.Error("want whole string, got", n, err)
		}
	}
}

func TestFailAfter(t *testing.T) {
	rdr := newRdr(longstring)
	rdr.SetFailAfter(15)
	got, err := io.ReadAll(rdr)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Error("want ErrBroken, got", err)
	}
	if string(got) != longstring[:15] {
		t.Errorf("got %q", got)
	}
}

func TestReaderSimple(t *testing.T) {
	got, err := io.ReadAll(newRdr(longstring))
	if err != nil || string(got) != longstring {
		t.Errorf("simple read got %q %v", got, err)
	}
}

// TestClose checks the reader really calls the wrapped Close.
func TestClose(t *testing.T) {
	f, err := os.CreateTemp("", "testclose_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(longstring); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	rdr := brokenio.NewReader(f, 7)
	rdr.SetVerbose(true)
	if err := rdr.Close(); err != nil {
		t.Error("close failed", err)
	}
	if err := f.Close(); err == nil {
		t.Error("file should already be closed")
	}
}
