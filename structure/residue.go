package structure

import (
	"fmt"
	"sort"
	"strconv"
)

// Locus says where a residue sits in a file: chain, sequence number and
// insertion code. It is what a residue identifier is usually made from.
type Locus struct {
	Chain string
	Seq   int
	ICode string
}

// String gives the residue identifier a file would use, like A.12 or
// A.12B.
func (l Locus) String() string {
	return l.Chain + "." + strconv.Itoa(l.Seq) + l.ICode
}

// Less orders by chain, then sequence number, then insertion code.
func (l Locus) Less(m Locus) bool {
	if l.Chain != m.Chain {
		return l.Chain < m.Chain
	}
	if l.Seq != m.Seq {
		return l.Seq < m.Seq
	}
	return l.ICode < m.ICode
}

// Residue is an AtomicStructure with an identifier and a name.
// A missing residue is one we know is in the sequence, but has no
// coordinates, so it has no atoms.
type Residue struct {
	AtomicStructure
	id      string
	name    string
	missing bool
	locus   Locus
}

// NewResidue makes a residue. The id must be unique within whatever
// container the residue ends up in, but that is checked by the
// container, not here.
func NewResidue(id, name string, atoms ...*Atom) (*Residue, error) {
	s, err := newAtomSetChecked(atoms)
	if err != nil {
		return nil, err
	}
	return &Residue{
		AtomicStructure: AtomicStructure{atoms: s},
		id:              id,
		name:            name,
	}, nil
}

// NewMissingResidue makes a residue with no atoms that is flagged
// as missing.
func NewMissingResidue(id, name string) *Residue {
	return &Residue{
		AtomicStructure: AtomicStructure{atoms: make(AtomSet)},
		id:              id,
		name:            name,
		missing:         true,
	}
}

// ResidueID returns the identifier.
func (r *Residue) ResidueID() string { return r.id }

// ResidueName returns the name, like "TYR".
func (r *Residue) ResidueName() string { return r.name }

// IsMissing says if the residue has no coordinates in the source.
func (r *Residue) IsMissing() bool { return r.missing }

// Locus returns the chain, sequence number and insertion code.
func (r *Residue) Locus() Locus { return r.locus }

// SetLocus sets where the residue sits. It does not change the id.
func (r *Residue) SetLocus(l Locus) { r.locus = l }

// ChainID is a shortcut for Locus().Chain
func (r *Residue) ChainID() string { return r.locus.Chain }

func (r *Residue) String() string {
	return fmt.Sprintf("<Residue %s (%s)>", r.id, r.name)
}

// ResidueSet is a set of residues.
type ResidueSet map[*Residue]struct{}

// NewResidueSet returns a set holding residues. nil entries are skipped.
func NewResidueSet(residues ...*Residue) ResidueSet {
	s := make(ResidueSet, len(residues))
	for _, r := range residues {
		if r != nil {
			s[r] = struct{}{}
		}
	}
	return s
}

// Has says if r is in the set.
func (s ResidueSet) Has(r *Residue) bool {
	_, ok := s[r]
	return ok
}

// Len is the number of residues.
func (s ResidueSet) Len() int { return len(s) }

// Slice returns the residues sorted by residue id.
func (s ResidueSet) Slice() []*Residue {
	ret := make([]*Residue, 0, len(s))
	for r := range s {
		ret = append(ret, r)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].id < ret[j].id })
	return ret
}

// Equal says if two sets hold exactly the same residues.
func (s ResidueSet) Equal(t ResidueSet) bool {
	if len(s) != len(t) {
		return false
	}
	for r := range s {
		if !t.Has(r) {
			return false
		}
	}
	return true
}
