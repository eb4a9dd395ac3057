// Package dict turns parsed pdb records into the intermediate
// representation in pdb/cmmn.
package dict

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-torda/molstruct/pdb/cmmn"
	. "github.com/andrew-torda/molstruct/pdb/rec"
	"github.com/samber/lo"
)

// DateLayout is how the deposition date looks in a HEADER.
const DateLayout = "02-Jan-06"

var (
	organismRe   = regexp.MustCompile(`ORGANISM_SCIENTIFIC:\s*([^;]*);`)
	expressionRe = regexp.MustCompile(`EXPRESSION_SYSTEM:\s*([^;]*);`)
	resolutionRe = regexp.MustCompile(`RESOLUTION\.\s*([0-9.]+)\s*ANGSTROMS`)
	rfactorRe    = regexp.MustCompile(`R VALUE\s+\(WORKING SET\)\s*:\s*([0-9.]+)`)
)

// resKey is what atoms of one residue have in common.
type resKey struct {
	chain string
	seq   int
	icode string
}

// modelBuilder collects one model's atoms and remembers which residue
// each went into.
type modelBuilder struct {
	md    cmmn.ModelDict
	index map[resKey]int // residue key to position in md.Residues
}

func newModelBuilder(n int) *modelBuilder {
	return &modelBuilder{md: cmmn.ModelDict{Number: n}, index: make(map[resKey]int)}
}

func (mb *modelBuilder) addAtom(a cmmn.AtomRecord) {
	k := resKey{a.ChainID, a.ResSeq, a.ICode}
	ir, ok := mb.index[k]
	if !ok {
		ir = len(mb.md.Residues)
		mb.index[k] = ir
		mb.md.Residues = append(mb.md.Residues, cmmn.ResidueRecord{
			ID:      cmmn.ResidueID(k.chain, k.seq, k.icode),
			Name:    a.ResName,
			ChainID: k.chain,
			ResSeq:  k.seq,
			ICode:   k.icode,
		})
	}
	mb.md.Residues[ir].Atoms = append(mb.md.Residues[ir].Atoms, len(mb.md.Atoms))
	mb.md.Atoms = append(mb.md.Atoms, a)
}

// addMissing appends a REMARK 465 residue unless the key is already used.
func (mb *modelBuilder) addMissing(r cmmn.ResidueRecord) {
	k := resKey{r.ChainID, r.ResSeq, r.ICode}
	if _, ok := mb.index[k]; ok {
		return
	}
	mb.index[k] = len(mb.md.Residues)
	mb.md.Residues = append(mb.md.Residues, r)
}

// missing is a REMARK 465 line, with the model it is for (0 for all).
type missing struct {
	model int
	res   cmmn.ResidueRecord
}

// builder holds what we have seen so far.
type builder struct {
	d        cmmn.Dict
	texts    map[string][]string // continued records by name
	remarks  map[int][]string
	missing  []missing
	models   []*modelBuilder
	current  *modelBuilder
	conIndex map[int]int // CONECT serial to position in d.Connections
}

// Build makes the intermediate representation from records. The only
// error it can give is a *rec.FormatError for a deposition date it
// cannot read.
func Build(recs []Record) (*cmmn.Dict, error) {
	b := builder{
		texts:    make(map[string][]string),
		remarks:  make(map[int][]string),
		conIndex: make(map[int]int),
	}
	for i := range recs {
		if err := b.record(&recs[i]); err != nil {
			return nil, err
		}
	}
	b.finish()
	return &b.d, nil
}

func (b *builder) record(r *Record) error {
	switch r.Name {
	case "HEADER":
		return b.header(r)
	case "TITLE", "KEYWDS", "EXPDTA", "SOURCE":
		b.texts[r.Name] = append(b.texts[r.Name], r.Str(FText))
	case "REMARK":
		b.remark(r)
	case "MODEL":
		b.current = newModelBuilder(r.Int(FSerial))
		b.models = append(b.models, b.current)
	case "ENDMDL":
		b.current = nil
	case "ATOM", "HETATM":
		if b.current == nil {
			b.current = newModelBuilder(1)
			b.models = append(b.models, b.current)
		}
		b.current.addAtom(atomRecord(r))
	case "CONECT":
		b.conect(r)
	}
	return nil
}

func (b *builder) header(r *Record) error {
	b.d.Classification = r.Str(FClassification)
	b.d.Code = r.Str(FIDCode)
	if !r.Has(FDepDate) {
		return nil
	}
	s := r.Str(FDepDate)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return &FormatError{Line: r.Line, Record: r.Name, Field: FDepDate, Value: s, Err: err}
	}
	b.d.DepositionDate = t
	return nil
}

func (b *builder) remark(r *Record) {
	n := r.Int(FRemarkNum)
	if n == 465 && r.Has(FResName) && r.Has(FResSeq) {
		chain, seq, icode := r.Str(FChainID), r.Int(FResSeq), r.Str(FICode)
		b.missing = append(b.missing, missing{
			model: r.Int(FModel),
			res: cmmn.ResidueRecord{
				ID:      cmmn.ResidueID(chain, seq, icode),
				Name:    r.Str(FResName),
				ChainID: chain,
				ResSeq:  seq,
				ICode:   icode,
				Missing: true,
			},
		})
		return
	}
	if r.Has(FText) {
		b.remarks[n] = append(b.remarks[n], r.Str(FText))
	}
}

func atomRecord(r *Record) cmmn.AtomRecord {
	return cmmn.AtomRecord{
		Serial:     r.Int(FSerial),
		Name:       r.Str(FName),
		AltLoc:     r.Str(FAltLoc),
		ResName:    r.Str(FResName),
		ChainID:    r.Str(FChainID),
		ResSeq:     r.Int(FResSeq),
		ICode:      r.Str(FICode),
		Xyz:        cmmn.Xyz{X: r.Float(FX), Y: r.Float(FY), Z: r.Float(FZ)},
		Occupancy:  r.Float(FOccupancy),
		TempFactor: r.Float(FTempFactor),
		Element:    r.Str(FElement),
		Charge:     r.Str(FCharge),
		Hetero:     r.Name == "HETATM",
	}
}

// conect adds bonded partners. Lines with the same serial are merged, since
// writing splits long lists over several lines.
func (b *builder) conect(r *Record) {
	serial := r.Int(FSerial)
	i, ok := b.conIndex[serial]
	if !ok {
		i = len(b.d.Connections)
		b.conIndex[serial] = i
		b.d.Connections = append(b.d.Connections, cmmn.Connection{Serial: serial})
	}
	for _, f := range Bonded {
		if r.Has(f) {
			b.d.Connections[i].Bonded = append(b.d.Connections[i].Bonded, r.Int(f))
		}
	}
}

// joinText puts continuation lines together with single spaces.
func joinText(parts []string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func firstMatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func matchFloat(re *regexp.Regexp, lines []string) float64 {
	s, ok := firstMatch(re, strings.Join(lines, " "))
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0 // like "2.1.3", treat as not given
	}
	return f
}

func (b *builder) finish() {
	b.d.Title = joinText(b.texts["TITLE"])
	b.d.Technique = joinText(b.texts["EXPDTA"])
	if kw := joinText(b.texts["KEYWDS"]); kw != "" {
		b.d.Keywords = lo.Filter(lo.Map(strings.Split(kw, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		}), func(s string, _ int) bool { return s != "" })
	}
	source := joinText(b.texts["SOURCE"])
	b.d.Organism, _ = firstMatch(organismRe, source)
	b.d.ExpressionSystem, _ = firstMatch(expressionRe, source)
	b.d.Resolution = matchFloat(resolutionRe, b.remarks[2])
	b.d.RFactor = matchFloat(rfactorRe, b.remarks[3])

	if len(b.missing) > 0 && len(b.models) == 0 {
		b.models = append(b.models, newModelBuilder(1))
	}
	for _, m := range b.missing {
		for _, mb := range b.models {
			if m.model == 0 || m.model == mb.md.Number {
				mb.addMissing(m.res)
			}
		}
	}
	for _, mb := range b.models {
		b.d.Models = append(b.d.Models, mb.md)
	}
}
