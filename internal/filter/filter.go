// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"math"
	"slices"

	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// Criteria is the conjunction of dashboard controls. A record passes when
// its year and author count fall within the ranges, its journal is in
// Journals (or Journals is empty), and its source equals Source (or Source
// is empty or "All").
type Criteria struct {
	Years    types.Range `json:"years" yaml:"years"`
	Journals []string    `json:"journals,omitempty" yaml:"journals,omitempty"`
	Source   string      `json:"source" yaml:"source"`
	Authors  types.Range `json:"authors" yaml:"authors"`
}

// Unconstrained returns criteria every record satisfies.
func Unconstrained() Criteria {
	return Criteria{
		Years:   types.Range{Lo: math.MinInt, Hi: math.MaxInt},
		Source:  types.SourceAll,
		Authors: types.Range{Lo: math.MinInt, Hi: math.MaxInt},
	}
}

// IsUnconstrained reports whether the criteria cannot reject any record.
// Callers use it to tell "no filters applied" apart from "filters matched
// nothing".
func (c Criteria) IsUnconstrained() bool {
	return c.Years.Lo == math.MinInt && c.Years.Hi == math.MaxInt &&
		c.Authors.Lo == math.MinInt && c.Authors.Hi == math.MaxInt &&
		len(c.Journals) == 0 && anySource(c.Source)
}

func anySource(s string) bool {
	return s == "" || s == types.SourceAll
}

// Match reports whether r satisfies the criteria.
func (c Criteria) Match(r types.Record) bool {
	return c.matcher()(r)
}

func (c Criteria) matcher() func(types.Record) bool {
	var journals map[string]bool
	if len(c.Journals) > 0 {
		journals = make(map[string]bool, len(c.Journals))
		for _, j := range c.Journals {
			journals[j] = true
		}
	}
	matchAllSources := anySource(c.Source)

	return func(r types.Record) bool {
		if !c.Years.Contains(r.PublicationYear) || !c.Authors.Contains(r.AuthorCount) {
			return false
		}
		if journals != nil && !journals[r.Journal] {
			return false
		}
		return matchAllSources || r.Source == c.Source
	}
}

// Apply returns the records of v that satisfy c, in their original order.
// Inverted or out-of-domain ranges yield an empty view rather than an error.
func Apply(v View, c Criteria) View {
	if c.Years.IsEmpty() || c.Authors.IsEmpty() {
		return v.sub(nil)
	}

	match := c.matcher()
	indices := make([]int, 0, v.Len())
	for _, idx := range v.indices {
		if match(v.parent[idx]) {
			indices = append(indices, idx)
		}
	}
	return v.sub(slices.Clip(indices))
}

// Records filters a plain record slice. It is shorthand for
// Apply(Full(records), c).
func Records(records []types.Record, c Criteria) View {
	return Apply(Full(records), c)
}
