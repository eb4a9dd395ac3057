package structure

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Model is one set of coordinates from a file. NMR files usually have
// lots of them, crystal structures usually one.
type Model struct {
	ResiduicStructure
	number int
}

// NewModel makes model number n. The rules for residues are those of
// NewResiduicStructure.
func NewModel(n int, residues ...*Residue) (*Model, error) {
	m := &Model{number: n}
	if err := m.init(residues); err != nil {
		return nil, err
	}
	return m, nil
}

// Number is the model number, usually counting from 1.
func (m *Model) Number() int { return m.number }

// Chains groups the model's residues by chain identifier. The chains
// are made fresh on each call and come back sorted by identifier.
// The residues in them are the model's residues, not copies.
func (m *Model) Chains() []*Chain {
	all := m.Residues(true).Slice()
	groups := lo.GroupBy(all, func(r *Residue) string { return r.ChainID() })
	ids := lo.Keys(groups)
	sort.Strings(ids)
	chains := make([]*Chain, 0, len(ids))
	for _, id := range ids {
		c := &Chain{id: id}
		c.byID = make(map[string]*Residue, len(groups[id]))
		for _, r := range groups[id] {
			c.byID[r.id] = r // ids are already unique in the model
		}
		chains = append(chains, c)
	}
	return chains
}

// Chain returns the chain called id or nil.
func (m *Model) Chain(id string) *Chain {
	for _, c := range m.Chains() {
		if c.id == id {
			return c
		}
	}
	return nil
}

func (m *Model) String() string {
	return fmt.Sprintf("<Model %d (%d residues)>", m.number, m.Len())
}

// Chain is a residue container with a chain identifier.
type Chain struct {
	ResiduicStructure
	id string
}

// NewChain makes a chain. The residues are not checked to see if their
// chain identifiers agree with id.
func NewChain(id string, residues ...*Residue) (*Chain, error) {
	c := &Chain{id: id}
	if err := c.init(residues); err != nil {
		return nil, err
	}
	return c, nil
}

// ChainID returns the identifier, like "A".
func (c *Chain) ChainID() string { return c.id }

func (c *Chain) String() string {
	return fmt.Sprintf("<Chain %s (%d residues)>", c.id, c.Len())
}

var (
	_ ResidueContainer = (*ResiduicStructure)(nil)
	_ ResidueContainer = (*Model)(nil)
	_ ResidueContainer = (*Chain)(nil)
	_ AtomLike         = (*AtomicStructure)(nil)
	_ AtomLike         = (*Residue)(nil)
)
