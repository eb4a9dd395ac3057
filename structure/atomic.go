package structure

import (
	"fmt"
)

// AtomLike is anything that can give us a set of atoms. Every container
// in this package is one.
type AtomLike interface {
	Atoms() AtomSet
}

// AtomicStructure is a set of atoms. Unlike the residue containers, it
// may be empty.
type AtomicStructure struct {
	atoms AtomSet
}

// newAtomSetChecked is NewAtomSet, but complains about nil atoms
// instead of skipping them.
func newAtomSetChecked(atoms []*Atom) (AtomSet, error) {
	s := make(AtomSet, len(atoms))
	for _, a := range atoms {
		if a == nil {
			return nil, ErrNotAtom
		}
		s[a] = struct{}{}
	}
	return s, nil
}

// NewAtomicStructure collects atoms. Giving the same atom twice is
// not an error, it is just stored once.
func NewAtomicStructure(atoms ...*Atom) (*AtomicStructure, error) {
	s, err := newAtomSetChecked(atoms)
	if err != nil {
		return nil, err
	}
	return &AtomicStructure{atoms: s}, nil
}

// Atoms returns a copy of the atom set.
func (as *AtomicStructure) Atoms() AtomSet {
	if as.atoms == nil {
		return make(AtomSet)
	}
	return as.atoms.Copy()
}

// AddAtom puts an atom in the structure.
func (as *AtomicStructure) AddAtom(a *Atom) error {
	if a == nil {
		return ErrNotAtom
	}
	if as.atoms == nil {
		as.atoms = make(AtomSet)
	}
	as.atoms[a] = struct{}{}
	return nil
}

// RemoveAtom takes an atom out. If it was not there, nothing happens.
func (as *AtomicStructure) RemoveAtom(a *Atom) {
	delete(as.atoms, a)
}

// AtomByID returns the atom with identifier id, or nil.
func (as *AtomicStructure) AtomByID(id int) *Atom { return as.atoms.ByID(id) }

// AtomsByElement returns all the atoms of element el.
func (as *AtomicStructure) AtomsByElement(el string) AtomSet { return as.atoms.ByElement(el) }

// AtomByElement returns one atom of element el, or nil.
func (as *AtomicStructure) AtomByElement(el string) *Atom {
	if atoms := as.atoms.ByElement(el).Slice(); len(atoms) > 0 {
		return atoms[0]
	}
	return nil
}

// Formula counts the atoms of each element.
func (as *AtomicStructure) Formula() map[string]int { return as.atoms.Formula() }

func (as *AtomicStructure) String() string {
	return fmt.Sprintf("<AtomicStructure (%d atoms)>", len(as.atoms))
}

// AtomsByName returns the atoms with name, like "CA".
func (as *AtomicStructure) AtomsByName(name string) AtomSet { return as.atoms.ByName(name) }
