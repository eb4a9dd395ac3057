package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/molstruct/pdb/zwrap"
)

const content = "HEADER    PLAIN OR COMPRESSED\nEND\n"

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// writeToTmp writes data to a temporary file and returns it, ready
// for reading.
func writeToTmp(t *testing.T, data []byte) *os.File {
	t.Helper()
	fp, err := os.CreateTemp("", "del_me_testing")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fp.Name()) })
	if _, err := fp.Write(data); err != nil {
		t.Fatal(err)
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestWrap(t *testing.T) {
	for _, gz := range []bool{true, false} {
		data := []byte(content)
		if gz {
			data = gzipped(t, content)
		}
		fp := writeToTmp(t, data)
		r, err := zwrap.Wrap(fp)
		if !gz {
			if err == nil {
				t.Error("Wrap should refuse plain text")
			}
			fp.Close()
			continue
		}
		if err != nil {
			t.Fatal("fail on gzipped file", err)
		}
		got, err := io.ReadAll(r)
		if err != nil || string(got) != content {
			t.Errorf("got %q %v", got, err)
		}
		if err := r.Close(); err != nil {
			t.Error("close", err)
		}
	}
}

// WrapMaybe should be happy with either.
func TestWrapMaybe(t *testing.T) {
	for _, gz := range []bool{true, false} {
		data := []byte(content)
		if gz {
			data = gzipped(t, content)
		}
		r, err := zwrap.WrapMaybe(writeToTmp(t, data))
		if err != nil {
			t.Fatal(err)
		}
		if r.Compressed() != gz {
			t.Error("Compressed() wrong, want", gz)
		}
		got, err := io.ReadAll(r)
		if err != nil || string(got) != content {
			t.Errorf("got %q %v", got, err)
		}
		if err := r.Close(); err != nil {
			t.Error("close", err)
		}
	}
}

func TestShortInput(t *testing.T) {
	for _, s := range []string{"", "A"} {
		r, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader([]byte(s))))
		if err != nil {
			t.Fatal(err)
		}
		got, _ := io.ReadAll(r)
		if string(got) != s || r.Compressed() {
			t.Errorf("%q came back as %q", s, got)
		}
	}
}
