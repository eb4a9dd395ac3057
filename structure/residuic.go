package structure

import (
	"fmt"

	"github.com/pkg/errors"
)

// ResidueContainer is what Model, Chain and ResiduicStructure have
// in common.
type ResidueContainer interface {
	AtomLike
	Residues(includeMissing bool) ResidueSet
	AddResidue(r *Residue) error
	RemoveResidue(r *Residue)
	ResidueByID(id string) *Residue
	ResiduesByName(name string, includeMissing bool) ResidueSet
	ResidueByName(name string, includeMissing bool) *Residue
}

// ResiduicStructure is a set of residues with unique identifiers.
// Its atoms are whatever atoms its residues have at the moment you ask.
type ResiduicStructure struct {
	byID map[string]*Residue
}

// NewResiduicStructure collects residues. It fails with ErrNoResidues if
// there are none, ErrNotResidue if one is nil and ErrDuplicateResidues if
// two share an identifier.
func NewResiduicStructure(residues ...*Residue) (*ResiduicStructure, error) {
	rs := new(ResiduicStructure)
	if err := rs.init(residues); err != nil {
		return nil, err
	}
	return rs, nil
}

// init fills an empty structure. It is shared with Model and Chain.
func (rs *ResiduicStructure) init(residues []*Residue) error {
	if len(residues) == 0 {
		return ErrNoResidues
	}
	rs.byID = make(map[string]*Residue, len(residues))
	for _, r := range residues {
		if err := rs.AddResidue(r); err != nil {
			return err
		}
	}
	return nil
}

// Residues returns the residues. If includeMissing is false, residues
// flagged as missing are left out.
func (rs *ResiduicStructure) Residues(includeMissing bool) ResidueSet {
	s := make(ResidueSet, len(rs.byID))
	for _, r := range rs.byID {
		if includeMissing || !r.missing {
			s[r] = struct{}{}
		}
	}
	return s
}

// Len is the number of residues, missing or not.
func (rs *ResiduicStructure) Len() int { return len(rs.byID) }

// Atoms returns the union of the residues' atoms.
func (rs *ResiduicStructure) Atoms() AtomSet {
	s := make(AtomSet)
	for _, r := range rs.byID {
		for a := range r.atoms {
			s[a] = struct{}{}
		}
	}
	return s
}

// AddResidue puts r in the structure, unless its id is already taken.
func (rs *ResiduicStructure) AddResidue(r *Residue) error {
	if r == nil {
		return ErrNotResidue
	}
	if _, ok := rs.byID[r.id]; ok {
		return errors.Wrapf(ErrDuplicateResidues, "residue id %q", r.id)
	}
	if rs.byID == nil {
		rs.byID = make(map[string]*Residue)
	}
	rs.byID[r.id] = r
	return nil
}

// RemoveResidue takes r out. Removing a residue that is not there is
// not an error.
// Nothing stops you removing the last residue, so a structure can end
// up empty even though it cannot be made empty.
func (rs *ResiduicStructure) RemoveResidue(r *Residue) {
	if r == nil {
		return
	}
	if rs.byID[r.id] == r {
		delete(rs.byID, r.id)
	}
}

// ResidueByID looks amongst all residues, missing or not, for one
// with identifier id. It returns nil if there is none.
func (rs *ResiduicStructure) ResidueByID(id string) *Residue {
	return rs.byID[id]
}

// ResiduesByName returns every residue called name. No match gives an
// empty set.
func (rs *ResiduicStructure) ResiduesByName(name string, includeMissing bool) ResidueSet {
	s := make(ResidueSet)
	for _, r := range rs.byID {
		if r.name == name && (includeMissing || !r.missing) {
			s[r] = struct{}{}
		}
	}
	return s
}

// ResidueByName returns one residue called name, or nil. When there is
// more than one, the one with the smallest id (as a string) is returned.
func (rs *ResiduicStructure) ResidueByName(name string, includeMissing bool) *Residue {
	if found := rs.ResiduesByName(name, includeMissing).Slice(); len(found) > 0 {
		return found[0]
	}
	return nil
}

func (rs *ResiduicStructure) String() string {
	return fmt.Sprintf("<ResiduicStructure (%d residues)>", len(rs.byID))
}
