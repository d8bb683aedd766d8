// Package catalog holds the immutable, in-memory list of message assets and
// the tone/occasion vocabularies used to filter it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Any matches every asset regardless of its tags.
const Any = "any"

// Type is the presentation format of an asset.
type Type string

const (
	TypeText  Type = "text"
	TypePoem  Type = "poem"
	TypeImage Type = "image"
)

// Types lists the asset types in selection priority order.
var Types = []Type{TypeText, TypePoem, TypeImage}

var (
	ErrDuplicateID = errors.New("duplicate asset id")
	ErrInvalidType = errors.New("invalid asset type")
)

// Asset is one piece of curated content.
type Asset struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Tone     []string `json:"tone"`
	Occasion []string `json:"occasion"`

	// Text is set for text and poem assets.
	Text string `json:"text,omitempty"`

	// Caption and SVG are set for image assets.
	Caption string `json:"caption,omitempty"`
	SVG     string `json:"svg,omitempty"`
}

// SendableText is what gets copied or shared: the text, or an image's caption.
func (a Asset) SendableText() string {
	if a.Type == TypeImage {
		return a.Caption
	}
	return a.Text
}

// clone returns a with its tag slices copied.
func (a Asset) clone() Asset {
	a.Tone = slices.Clone(a.Tone)
	a.Occasion = slices.Clone(a.Occasion)
	return a
}

// Matches reports whether a carries the given tone and occasion.
// Any matches everything.
func (a Asset) Matches(tone, occasion string) bool {
	if tone != Any && tone != "" && !slices.Contains(a.Tone, tone) {
		return false
	}
	if occasion != Any && occasion != "" && !slices.Contains(a.Occasion, occasion) {
		return false
	}
	return true
}

// Catalog is a read-only asset list. Methods never mutate it and callers
// receive copies of the backing slice.
type Catalog struct {
	assets []Asset
	byID   map[string]int
}

// New validates assets and builds a Catalog. Ids must be unique and every
// asset must have a known type.
func New(assets []Asset) (*Catalog, error) {
	c := &Catalog{
		assets: cloneAll(assets),
		byID:   make(map[string]int, len(assets)),
	}
	for i, a := range c.assets {
		if !slices.Contains(Types, a.Type) {
			return nil, fmt.Errorf("asset %s: %w: %q", a.ID, ErrInvalidType, a.Type)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, a.ID)
		}
		c.byID[a.ID] = i
	}
	return c, nil
}

// Default returns the catalog built from the bundled seed assets.
func Default() *Catalog {
	c, err := New(seedAssets)
	if err != nil {
		panic(fmt.Sprintf("seed catalog: %v", err))
	}
	return c
}

// All returns every asset in catalog order.
func (c *Catalog) All() []Asset {
	return cloneAll(c.assets)
}

func cloneAll(in []Asset) []Asset {
	out := make([]Asset, len(in))
	for i, a := range in {
		out[i] = a.clone()
	}
	return out
}

// Len returns the number of assets.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Filter returns the assets tagged with tone AND occasion, in catalog order.
func (c *Catalog) Filter(tone, occasion string) []Asset {
	var out []Asset
	for _, a := range c.assets {
		if a.Matches(tone, occasion) {
			out = append(out, a.clone())
		}
	}
	return out
}

// Get looks up an asset by id.
func (c *Catalog) Get(id string) (Asset, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Asset{}, false
	}
	return c.assets[i].clone(), true
}

// Lookup resolves ids to assets, skipping unknown ids and keeping order.
func (c *Catalog) Lookup(ids []string) []Asset {
	out := make([]Asset, 0, len(ids))
	for _, id := range ids {
		if a, ok := c.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}
