// Package brokenio wraps an io.ReadCloser so reads go wrong now and
// then. It is for testing that errors from files, compressed streams
// and so on come back to the caller.
// Typical use:
//   r := brokenio.NewReader(fp, seed)
//   r.SetFailAfter(100)
// Everything then works as before, but with artificial errors.
// A zero length file is simulated by returning io.EOF on the first read,
// without an error.
package brokenio

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrBroken is the cause of every error we make up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// Reader has the settings that say how often and how badly reads fail.
// Probabilities are from 0 to 1 and are not checked.
type Reader struct {
	rc           io.ReadCloser
	rnd          *rand.Rand
	probZeroFile float32 // first read gives nothing
	probFail     float32 // a read is damaged
	fracFail     float32 // how much of a damaged read is wiped
	failAfter    int     // fail for sure after this many bytes, -1 for never
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader wraps rc. The seed makes failures repeatable.
func NewReader(rc io.ReadCloser, seed int64) *Reader {
	return &Reader{
		rc:        rc,
		rnd:       rand.New(rand.NewSource(seed)),
		fracFail:  0.5,
		failAfter: -1,
	}
}

// SetVerbose makes Close log how much went through.
func (r *Reader) SetVerbose(v bool) { r.verbose = v }

// SetFracFail sets the fraction of a damaged read that is wiped.
func (r *Reader) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the chance of the first read returning nothing.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the chance of any read being damaged.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have been passed on.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the last 30 % of a slice.
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	q := p[nkeep:]
	for i := range q {
		q[i] = 0
	}
	return nkeep, errors.Wrapf(ErrBroken, "wiped last %d of %d bytes", len(p)-nkeep, len(p))
}

// Read passes on to the wrapped reader and then maybe breaks the result.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	if r.failAfter >= 0 && r.nByte >= r.failAfter {
		return 0, errors.Wrapf(ErrBroken, "after %d bytes", r.nByte)
	}
	if r.failAfter >= 0 && len(p) > r.failAfter-r.nByte {
		p = p[:r.failAfter-r.nByte]
	}
	n, err := r.rc.Read(p)
	r.nCalled++
	r.nByte += n
	if r.probFail > 0 && r.fracFail > 0 && r.rnd.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *Reader) Close() error {
	if r.verbose {
		log.WithFields(log.Fields{"calls": r.nCalled, "bytes": r.nByte}).Info("brokenio close")
	}
	return r.rc.Close()
}
