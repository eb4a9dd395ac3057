// Package zwrap takes a file pointer and, if the contents are gzipped,
// wraps it so reads come from the decompressor. Close closes the
// decompressor, followed by the underlying file.
package zwrap

import (
	"bufio"
	"compress/gzip"
	"io"

	"github.com/pkg/errors"
)

// Reader is what we return.
type Reader struct {
	rc io.ReadCloser
	br *bufio.Reader // what we read from when not compressed
	zr *gzip.Reader  // nil if not compressed
}

// Close closes the decompressor, then the underlying source.
func (r *Reader) Close() error {
	var zerr error
	if r.zr != nil {
		zerr = r.zr.Close()
	}
	ferr := r.rc.Close()
	switch {
	case zerr != nil && ferr != nil:
		return errors.Wrap(zerr, ferr.Error())
	case zerr != nil:
		return zerr
	}
	return ferr
}

// Read reads from the decompressor if there is one.
func (r *Reader) Read(p []byte) (int, error) {
	if r.zr != nil {
		return r.zr.Read(p)
	}
	return r.br.Read(p)
}

// Compressed says if we are decompressing.
func (r *Reader) Compressed() bool { return r.zr != nil }

// Wrap insists that rc is gzipped.
func Wrap(rc io.ReadCloser) (*Reader, error) {
	zr, err := gzip.NewReader(rc)
	if err != nil {
		return nil, errors.Wrap(err, "zwrap")
	}
	return &Reader{rc: rc, zr: zr}, nil
}

// gzip streams start with these two bytes
var magic = []byte{0x1f, 0x8b}

// WrapMaybe looks at the first bytes of rc and only decompresses if
// they look like gzip. Nothing has to be able to seek, since we peek
// through a buffer.
func WrapMaybe(rc io.ReadCloser) (*Reader, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(magic))
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "zwrap peek")
	}
	if len(head) == len(magic) && head[0] == magic[0] && head[1] == magic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "zwrap")
		}
		return &Reader{rc: rc, br: br, zr: zr}, nil
	}
	return &Reader{rc: rc, br: br}, nil
}
