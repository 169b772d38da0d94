// SPDX-License-Identifier: MIT
// Package: versegraph/dataset
//
// corpus.go — YAML corpus model and loader.
//
// Contract:
//   • Poem IDs are positive and unique.
//   • Corpus.IDs is sorted ascending.
//   • Themes/Motifs return fresh maps suitable for builder.Build.

package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Poem is one corpus entry.
type Poem struct {
	ID      int        `yaml:"id"`
	Title   string     `yaml:"title,omitempty"`
	Stanzas [][]string `yaml:"stanzas,omitempty"`
	Themes  []string   `yaml:"themes,omitempty"`
	Motifs  []string   `yaml:"motifs,omitempty"`
}

// Lines flattens the stanzas into one slice, in reading order.
func (p Poem) Lines() []string {
	var n int
	for _, s := range p.Stanzas {
		n += len(s)
	}
	lines := make([]string, 0, n)
	for _, s := range p.Stanzas {
		lines = append(lines, s...)
	}

	return lines
}

// Corpus is an immutable, ID-indexed set of poems.
type Corpus struct {
	poems []Poem
	byID  map[int]int
}

type corpusFile struct {
	Poems []Poem `yaml:"poems"`
}

// LoadCorpus reads the YAML corpus at path.
func LoadCorpus(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCorpus: %w", err)
	}
	c, err := DecodeCorpus(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("LoadCorpus: %s: %w", path, err)
	}

	return c, nil
}

// DecodeCorpus parses a corpus document from r.
func DecodeCorpus(r io.Reader) (*Corpus, error) {
	var doc corpusFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	return NewCorpus(doc.Poems)
}

// NewCorpus validates poems and indexes them by ID.
func NewCorpus(poems []Poem) (*Corpus, error) {
	c := &Corpus{
		poems: make([]Poem, 0, len(poems)),
		byID:  make(map[int]int, len(poems)),
	}
	for _, p := range poems {
		if p.ID <= 0 {
			return nil, fmt.Errorf("poem %d: %w", p.ID, ErrInvalidPoem)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("poem %d: %w", p.ID, ErrDuplicatePoem)
		}
		c.byID[p.ID] = len(c.poems)
		c.poems = append(c.poems, p)
	}
	sort.Slice(c.poems, func(i, j int) bool { return c.poems[i].ID < c.poems[j].ID })
	for i, p := range c.poems {
		c.byID[p.ID] = i
	}

	return c, nil
}

// Len returns the number of poems.
func (c *Corpus) Len() int { return len(c.poems) }

// IDs returns every poem ID in ascending order.
func (c *Corpus) IDs() []int {
	ids := make([]int, len(c.poems))
	for i, p := range c.poems {
		ids[i] = p.ID
	}

	return ids
}

// Poems returns the poems in ascending ID order.
func (c *Corpus) Poems() []Poem {
	out := make([]Poem, len(c.poems))
	copy(out, c.poems)

	return out
}

// Poem looks up one poem.
func (c *Corpus) Poem(id int) (Poem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Poem{}, false
	}

	return c.poems[i], true
}

// Themes returns the theme labels per poem. Poems without themes are omitted.
func (c *Corpus) Themes() map[int][]string {
	return c.tags(func(p Poem) []string { return p.Themes })
}

// Motifs returns the motif labels per poem. Poems without motifs are omitted.
func (c *Corpus) Motifs() map[int][]string {
	return c.tags(func(p Poem) []string { return p.Motifs })
}

func (c *Corpus) tags(get func(Poem) []string) map[int][]string {
	out := make(map[int][]string, len(c.poems))
	for _, p := range c.poems {
		if labels := get(p); len(labels) > 0 {
			out[p.ID] = append([]string(nil), labels...)
		}
	}

	return out
}
