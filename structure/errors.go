package structure

import (
	"github.com/pkg/errors"
)

// ErrType is returned when something is handed a value it cannot use,
// like a nil atom or residue. Test for it with errors.Is, since
// ErrNotAtom and ErrNotResidue both wrap it.
var ErrType = errors.New("argument of wrong type")

var (
	ErrNotAtom    = errors.WithMessage(ErrType, "not an atom")
	ErrNotResidue = errors.WithMessage(ErrType, "not a residue")
)

// ErrNoResidues means a residue container was made with nothing in it.
var ErrNoResidues = errors.New("residuic structure needs at least one residue")

// ErrDuplicateResidues means two residues with the same identifier were
// put in the same container. The error returned is wrapped with the
// identifier, so use errors.Is.
var ErrDuplicateResidues = errors.New("duplicate residue id")
