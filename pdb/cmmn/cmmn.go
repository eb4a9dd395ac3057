// Package pdb/cmmn has the intermediate representation that sits
// between pdb records and the structure objects. Build fills it from
// records, Serialize writes it out and package pdb turns it into
// objects and back.
// Zero values mean "absent" for all the metadata: an empty string, a
// zero time, a resolution of 0.
package cmmn

import (
	"strconv"
	"time"
)

// Xyz is one set of coordinates.
type Xyz struct{ X, Y, Z float64 }

// AtomRecord is an ATOM or HETATM line, after parsing.
type AtomRecord struct {
	Serial     int
	Name       string // like "CA"
	AltLoc     string
	ResName    string
	ChainID    string
	ResSeq     int
	ICode      string // insertion code
	Xyz        Xyz
	Occupancy  float64
	TempFactor float64
	Element    string
	Charge     string
	Hetero     bool // from a HETATM line
}

// ResidueRecord groups atoms of one model that share chain, residue
// number and insertion code. Atoms holds indices into the model's Atoms.
// A missing residue comes from REMARK 465 and has no atoms.
type ResidueRecord struct {
	ID      string
	Name    string
	ChainID string
	ResSeq  int
	ICode   string
	Missing bool
	Atoms   []int
}

// ModelDict is one model. Atoms are in file order, residues in order
// of first appearance followed by the missing ones.
type ModelDict struct {
	Number   int
	Atoms    []AtomRecord
	Residues []ResidueRecord
}

// Connection is what we keep from CONECT lines.
type Connection struct {
	Serial int
	Bonded []int
}

// Dict is the whole file.
type Dict struct {
	Code             string
	Classification   string
	DepositionDate   time.Time
	Title            string
	Keywords         []string
	Technique        string
	Organism         string
	ExpressionSystem string
	Resolution       float64 // Ångström
	RFactor          float64
	Models           []ModelDict
	Connections      []Connection
}

// ResidueID makes the residue identifier from chain, residue number and
// insertion code, so chain A, 12, insertion B gives "A.12B". The dot
// keeps chain "1" residue 1 apart from a blank chain's residue 11.
func ResidueID(chain string, seq int, icode string) string {
	return chain + "." + strconv.Itoa(seq) + icode
}

// Model returns a pointer to the model numbered n, or nil.
func (d *Dict) Model(n int) *ModelDict {
	for i := range d.Models {
		if d.Models[i].Number == n {
			return &d.Models[i]
		}
	}
	return nil
}

// NAtoms is the number of atoms in all models.
func (d *Dict) NAtoms() (n int) {
	for _, m := range d.Models {
		n += len(m.Atoms)
	}
	return
}

// HasMissing says if any model has a missing residue.
func (d *Dict) HasMissing() bool {
	for _, m := range d.Models {
		for _, r := range m.Residues {
			if r.Missing {
				return true
			}
		}
	}
	return false
}

// ResidueAtoms returns copies of the atom records of residue r.
func (m *ModelDict) ResidueAtoms(r *ResidueRecord) []AtomRecord {
	ret := make([]AtomRecord, 0, len(r.Atoms))
	for _, i := range r.Atoms {
		ret = append(ret, m.Atoms[i])
	}
	return ret
}
