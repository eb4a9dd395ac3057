package pdbconv

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andrew-torda/molstruct/pdb"
	"github.com/andrew-torda/molstruct/pkg/logging"
	"github.com/pkg/errors"
)

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Convert reads infile and writes it out again. An empty infile means
// standard input and an empty outfile standard output.
func Convert(infile, outfile string) error {
	var p *pdb.Pdb
	var err error
	if infile == "" {
		p, err = pdb.Read(os.Stdin)
	} else {
		p, err = pdb.Open(infile)
	}
	if err != nil {
		return err
	}
	if outfile != "" {
		return p.Save(outfile)
	}
	s, err := p.ToFileString()
	if err != nil {
		return err
	}
	if _, err = io.WriteString(os.Stdout, s); err != nil {
		return errors.Wrap(err, "writing to stdout")
	}
	logging.Logger().WithField("in", infile).Debug("converted to stdout")
	return nil
}

// outName makes the output name for a batch input, so
// a/b/1abc.ent.gz becomes dir/1abc.pdb
func outName(dir, in string) string {
	base := filepath.Base(in)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return filepath.Join(dir, base+".pdb")
}
