// Package pdb is the upper level for pdb files. A Pdb holds the models
// and the metadata from a file. It can be made from text or a file and
// written back out again.
//
// Text goes through three steps: rec.Parse breaks it into records,
// dict.Build groups the records into a cmmn.Dict and FromDict turns that
// into objects. ToDict and write.Serialize go the other way.
package pdb

import (
	"fmt"
	"time"

	"github.com/andrew-torda/molstruct/pdb/cmmn"
	"github.com/andrew-torda/molstruct/structure"
)

// Pdb is a whole file. The metadata fields can be set as you like.
// Zero values are taken as absent and are not written out.
type Pdb struct {
	models []*structure.Model

	Code             string // four letter code, like "1ABC"
	DepositionDate   time.Time
	Title            string
	Resolution       float64
	RFactor          float64
	Organism         string
	ExpressionSystem string
	Technique        string
	Classification   string
	Keywords         []string
	Connections      []cmmn.Connection // from CONECT records
}

// New returns an empty Pdb with no models.
func New() *Pdb { return &Pdb{} }

// Models returns the models in file order. The slice is a copy, but
// the models are not.
func (p *Pdb) Models() []*structure.Model {
	return append([]*structure.Model(nil), p.models...)
}

// Model returns the first model, or nil if there are none.
func (p *Pdb) Model() *structure.Model {
	if len(p.models) == 0 {
		return nil
	}
	return p.models[0]
}

// AddModel appends a model.
func (p *Pdb) AddModel(m *structure.Model) {
	if m != nil {
		p.models = append(p.models, m)
	}
}

func (p *Pdb) String() string {
	code := ""
	if p.Code != "" {
		code = p.Code + " "
	}
	plural := "s"
	if len(p.models) == 1 {
		plural = ""
	}
	return fmt.Sprintf("<Pdb %s(%d model%s)>", code, len(p.models), plural)
}
