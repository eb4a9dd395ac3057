// 3 Oct 2026

// Package structure has the containers that make up a macromolecular
// structure. The smallest is an Atom. Atoms are collected in an
// AtomicStructure. A Residue is an AtomicStructure with a name and an
// identifier. Residues are collected in a ResiduicStructure, which is
// what a Model and a Chain are built on.
//
// Every method that hands back a set hands back a new one. You can
// do what you like with it, the container does not notice.
package structure

import (
	"fmt"
	"sort"

	"github.com/andrew-torda/matrix"
)

// AtomMeta is everything we know about an atom, apart from its
// identity, element and position.
type AtomMeta struct {
	Name       string // atom name, like "CA" or "OG1"
	AltLoc     string // alternate location indicator
	Occupancy  float64
	TempFactor float64
	Charge     string
	Hetero     bool // came from a HETATM record
}

// Atom is the leaf of the structure. Once made, it does not change.
// Two atoms are the same atom if they are the same pointer, not if they
// have the same id.
type Atom struct {
	id      int
	element string
	xyz     [3]float64
	meta    AtomMeta
}

// NewAtom makes an atom with serial number id.
func NewAtom(id int, element string, x, y, z float64, meta AtomMeta) *Atom {
	return &Atom{
		id:      id,
		element: element,
		xyz:     [3]float64{x, y, z},
		meta:    meta,
	}
}

// ID returns the atom's identifier (serial number in a file).
func (a *Atom) ID() int { return a.id }

// Element returns the element symbol, like "C" or "FE".
func (a *Atom) Element() string { return a.element }

// Coords returns x, y and z.
func (a *Atom) Coords() (x, y, z float64) { return a.xyz[0], a.xyz[1], a.xyz[2] }

// Meta returns a copy of the atom's metadata.
func (a *Atom) Meta() AtomMeta { return a.meta }

// Name is a shortcut for Meta().Name
func (a *Atom) Name() string { return a.meta.Name }

func (a *Atom) String() string {
	return fmt.Sprintf("<Atom %d (%s)>", a.id, a.element)
}

// AtomSet is a set of atoms. The zero value is not usable, make one
// with NewAtomSet.
type AtomSet map[*Atom]struct{}

// NewAtomSet returns a set holding atoms. nil entries are skipped.
func NewAtomSet(atoms ...*Atom) AtomSet {
	s := make(AtomSet, len(atoms))
	for _, a := range atoms {
		if a != nil {
			s[a] = struct{}{}
		}
	}
	return s
}

// Has says if atom a is in the set.
func (s AtomSet) Has(a *Atom) bool {
	_, ok := s[a]
	return ok
}

// Len is the number of atoms.
func (s AtomSet) Len() int { return len(s) }

// Copy returns an independent copy of the set.
func (s AtomSet) Copy() AtomSet {
	t := make(AtomSet, len(s))
	for a := range s {
		t[a] = struct{}{}
	}
	return t
}

// Slice returns the atoms ordered by id. Atoms with the same id keep
// no particular order amongst themselves.
func (s AtomSet) Slice() []*Atom {
	ret := make([]*Atom, 0, len(s))
	for a := range s {
		ret = append(ret, a)
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].id < ret[j].id })
	return ret
}

// ByID returns an atom with the given id or nil. If more than one atom
// has the id, the first in Slice() order wins.
func (s AtomSet) ByID(id int) *Atom {
	for _, a := range s.Slice() {
		if a.id == id {
			return a
		}
	}
	return nil
}

// ByElement returns the atoms of element el. The set may be empty.
func (s AtomSet) ByElement(el string) AtomSet {
	t := make(AtomSet)
	for a := range s {
		if a.element == el {
			t[a] = struct{}{}
		}
	}
	return t
}

// ByName returns the atoms called name, like "CA".
func (s AtomSet) ByName(name string) AtomSet {
	t := make(AtomSet)
	for a := range s {
		if a.meta.Name == name {
			t[a] = struct{}{}
		}
	}
	return t
}

// Formula counts atoms per element.
func (s AtomSet) Formula() map[string]int {
	f := make(map[string]int)
	for a := range s {
		f[a.element]++
	}
	return f
}

// CoordMatrix returns an n x 3 matrix of coordinates, one row per atom
// in Slice() order. The matrix is float32, so do not use it if you care
// about the last digit.
func (s AtomSet) CoordMatrix() *matrix.FMatrix2d {
	atoms := s.Slice()
	mat := matrix.NewFMatrix2d(len(atoms), 3)
	for i, a := range atoms {
		for j := range a.xyz {
			mat.Mat[i][j] = float32(a.xyz[j])
		}
	}
	return mat
}

// Equal says if two sets hold exactly the same atoms.
func (s AtomSet) Equal(t AtomSet) bool {
	if len(s) != len(t) {
		return false
	}
	for a := range s {
		if !t.Has(a) {
			return false
		}
	}
	return true
}
