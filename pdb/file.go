package pdb

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/molstruct/pdb/dict"
	"github.com/andrew-torda/molstruct/pdb/rec"
	"github.com/andrew-torda/molstruct/pdb/write"
	"github.com/andrew-torda/molstruct/pdb/zwrap"
	"github.com/andrew-torda/molstruct/pkg/logging"
	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

const (
	OldFmt byte = iota
	MmcifFmt
	UnkFmt
)

// ErrUnsupportedFormat is returned for files we recognise, but cannot
// read, like mmCIF.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ParseString turns pdb text into a Pdb.
func ParseString(text string) (*Pdb, error) {
	recs, err := rec.Parse(text)
	if err != nil {
		return nil, err
	}
	d, err := dict.Build(recs)
	if err != nil {
		return nil, err
	}
	return FromDict(d)
}

// ToFileString gives the text for a Pdb.
func (p *Pdb) ToFileString() (string, error) {
	return write.Serialize(ToDict(p))
}

// comparefirst says if two words are the same, looking at the
// length of the shorter.
func comparefirst(s, t string) bool {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	return s[:n] == t[:n]
}

// lookInText guesses from the first lines if we have old pdb format
// or mmcif.
func lookInText(b []byte) byte {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bytes.NewReader(b))
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		for _, w := range mmcifWords {
			if comparefirst(s, w) && len(s) >= len(w) {
				return MmcifFmt
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) && len(s) >= len(w) {
				return OldFmt
			}
		}
	}
	return UnkFmt
}

// OldOrMmcif decides what format we have. Maybe it uses the file name or
// maybe it peeks inside. We cannot use filepath.Ext, since it would
// give .gz for a.pdb.gz.
func OldOrMmcif(fname string, contents []byte) byte {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:])
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return OldFmt
		} else if strings.Contains(s, "cif") {
			return MmcifFmt
		}
	}
	return lookInText(contents)
}

// slurp reads a whole file. Plain files are mapped into memory, gzipped
// ones go through the decompressor.
func slurp(fname string) ([]byte, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return nil, err
	}
	if zr.Compressed() {
		return io.ReadAll(zr)
	}
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, errors.Errorf("%s is not a regular file", fname)
	}
	if fi.Size() == 0 {
		return nil, nil // cannot map zero bytes
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	return bytes.Clone(mm), nil
}

// Read takes the whole of r and parses it.
func Read(r io.Reader) (*Pdb, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading pdb")
	}
	return ParseString(string(b))
}

// Open reads a pdb file, which may be gzipped. mmCIF files are
// recognised, but give ErrUnsupportedFormat.
func Open(fname string) (*Pdb, error) {
	log := logging.Logger().WithField("file", fname)
	b, err := slurp(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", fname)
	}
	switch OldOrMmcif(fname, b) {
	case MmcifFmt:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s looks like mmcif", fname)
	case UnkFmt:
		log.Warn("cannot recognise format, trying pdb")
	}
	p, err := ParseString(string(b))
	if err != nil {
		return nil, errors.WithMessage(err, fname)
	}
	log.WithField("models", len(p.models)).Debug("read")
	return p, nil
}

// Save writes p to fname in pdb format. If the text cannot be made,
// the file is not touched.
func (p *Pdb) Save(fname string) error {
	s, err := p.ToFileString()
	if err != nil {
		return errors.WithMessage(err, fname)
	}
	if err := os.WriteFile(fname, []byte(s), 0644); err != nil {
		return errors.Wrapf(err, "saving %s", fname)
	}
	logging.Logger().WithField("file", fname).Debug("saved")
	return nil
}
