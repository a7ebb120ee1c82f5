// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter narrows a record set with the dashboard's control
// predicates and derives the count tables and summary metrics the charts
// are drawn from. A View never copies records: it holds indices into the
// parent slice, so narrowing a 5000-record corpus on every control change
// allocates only an index list.
package filter

import "github.com/pdiddy/paper-dashboard/pkg/types"

// View is an ordered subsequence of a parent record set.
type View struct {
	parent  []types.Record
	indices []int
}

// Full returns a view over every record in order.
func Full(records []types.Record) View {
	indices := make([]int, len(records))
	for i := range indices {
		indices[i] = i
	}
	return View{parent: records, indices: indices}
}

// Len returns the number of records in the view.
func (v View) Len() int { return len(v.indices) }

// At returns the i-th record of the view.
func (v View) At(i int) types.Record { return v.parent[v.indices[i]] }

// Records returns the view's records in order as a new slice.
func (v View) Records() []types.Record {
	out := make([]types.Record, len(v.indices))
	for i, idx := range v.indices {
		out[i] = v.parent[idx]
	}
	return out
}

// Indices returns the positions of the view's records in the parent set.
func (v View) Indices() []int {
	return append([]int(nil), v.indices...)
}

func (v View) sub(indices []int) View {
	return View{parent: v.parent, indices: indices}
}
