package pdb

import (
	"sort"

	"github.com/andrew-torda/molstruct/pdb/cmmn"
	"github.com/andrew-torda/molstruct/structure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FromDict builds the objects. Errors from the containers, like a
// model with no residues, are passed back and no Pdb is returned.
func FromDict(d *cmmn.Dict) (*Pdb, error) {
	p := &Pdb{
		Code:             d.Code,
		DepositionDate:   d.DepositionDate,
		Title:            d.Title,
		Resolution:       d.Resolution,
		RFactor:          d.RFactor,
		Organism:         d.Organism,
		ExpressionSystem: d.ExpressionSystem,
		Technique:        d.Technique,
		Classification:   d.Classification,
		Keywords:         append([]string(nil), d.Keywords...),
		Connections:      copyConnections(d.Connections),
	}
	for i := range d.Models {
		m, err := modelFromDict(&d.Models[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "model %d", d.Models[i].Number)
		}
		p.models = append(p.models, m)
	}
	return p, nil
}

func modelFromDict(md *cmmn.ModelDict) (*structure.Model, error) {
	atoms := make([]*structure.Atom, len(md.Atoms))
	for i := range md.Atoms {
		a := &md.Atoms[i]
		atoms[i] = structure.NewAtom(a.Serial, a.Element, a.Xyz.X, a.Xyz.Y, a.Xyz.Z,
			structure.AtomMeta{
				Name:       a.Name,
				AltLoc:     a.AltLoc,
				Occupancy:  a.Occupancy,
				TempFactor: a.TempFactor,
				Charge:     a.Charge,
				Hetero:     a.Hetero,
			})
	}
	residues := make([]*structure.Residue, 0, len(md.Residues))
	for _, rr := range md.Residues {
		var r *structure.Residue
		if rr.Missing {
			r = structure.NewMissingResidue(rr.ID, rr.Name)
		} else {
			mine := make([]*structure.Atom, 0, len(rr.Atoms))
			for _, ia := range rr.Atoms {
				if ia < 0 || ia >= len(atoms) {
					return nil, errors.Errorf("residue %s: atom index %d out of range", rr.ID, ia)
				}
				mine = append(mine, atoms[ia])
			}
			var err error
			if r, err = structure.NewResidue(rr.ID, rr.Name, mine...); err != nil {
				return nil, err
			}
		}
		r.SetLocus(structure.Locus{Chain: rr.ChainID, Seq: rr.ResSeq, ICode: rr.ICode})
		residues = append(residues, r)
	}
	return structure.NewModel(md.Number, residues...)
}

func copyConnections(cs []cmmn.Connection) []cmmn.Connection {
	return lo.Map(cs, func(c cmmn.Connection, _ int) cmmn.Connection {
		return cmmn.Connection{Serial: c.Serial, Bonded: append([]int(nil), c.Bonded...)}
	})
}

// ToDict walks the objects. Atoms come out ordered by id, residues in
// the order of their first atom and missing residues last, ordered by
// chain, number and insertion code.
func ToDict(p *Pdb) *cmmn.Dict {
	d := &cmmn.Dict{
		Code:             p.Code,
		Classification:   p.Classification,
		DepositionDate:   p.DepositionDate,
		Title:            p.Title,
		Keywords:         append([]string(nil), p.Keywords...),
		Technique:        p.Technique,
		Organism:         p.Organism,
		ExpressionSystem: p.ExpressionSystem,
		Resolution:       p.Resolution,
		RFactor:          p.RFactor,
		Connections:      copyConnections(p.Connections),
	}
	for _, m := range p.models {
		d.Models = append(d.Models, modelToDict(m))
	}
	return d
}

func residueRecord(r *structure.Residue) cmmn.ResidueRecord {
	l := r.Locus()
	return cmmn.ResidueRecord{
		ID:      r.ResidueID(),
		Name:    r.ResidueName(),
		ChainID: l.Chain,
		ResSeq:  l.Seq,
		ICode:   l.ICode,
		Missing: r.IsMissing(),
	}
}

func modelToDict(m *structure.Model) cmmn.ModelDict {
	md := cmmn.ModelDict{Number: m.Number()}
	all := m.Residues(true).Slice()
	present := lo.Filter(all, func(r *structure.Residue, _ int) bool { return !r.IsMissing() })
	missing := lo.Filter(all, func(r *structure.Residue, _ int) bool { return r.IsMissing() })

	owner := make(map[*structure.Atom]*structure.Residue)
	for _, r := range present {
		for a := range r.Atoms() {
			owner[a] = r
		}
	}
	index := make(map[*structure.Atom]int)
	for _, a := range m.Atoms().Slice() {
		r, ok := owner[a]
		if !ok {
			continue // only in a missing residue, so it has nowhere to go
		}
		l := r.Locus()
		meta := a.Meta()
		x, y, z := a.Coords()
		index[a] = len(md.Atoms)
		md.Atoms = append(md.Atoms, cmmn.AtomRecord{
			Serial:     a.ID(),
			Name:       meta.Name,
			AltLoc:     meta.AltLoc,
			ResName:    r.ResidueName(),
			ChainID:    l.Chain,
			ResSeq:     l.Seq,
			ICode:      l.ICode,
			Xyz:        cmmn.Xyz{X: x, Y: y, Z: z},
			Occupancy:  meta.Occupancy,
			TempFactor: meta.TempFactor,
			Element:    a.Element(),
			Charge:     meta.Charge,
			Hetero:     meta.Hetero,
		})
	}

	recs := make([]cmmn.ResidueRecord, 0, len(present))
	for _, r := range present {
		rr := residueRecord(r)
		for a := range r.Atoms() {
			rr.Atoms = append(rr.Atoms, index[a])
		}
		sort.Ints(rr.Atoms)
		if len(rr.Atoms) > 0 {
			recs = append(recs, rr)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Atoms[0] < recs[j].Atoms[0] })
	md.Residues = recs

	sort.SliceStable(missing, func(i, j int) bool { return missing[i].Locus().Less(missing[j].Locus()) })
	for _, r := range missing {
		md.Residues = append(md.Residues, residueRecord(r))
	}
	return md
}
