// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper dashboard.
// Record is the unit every stage reads; the config structs group the
// settings each stage needs.
package types

// Record holds the metadata of one synthetic research paper. Records are
// immutable once generated; stages that narrow a record set hold indices or
// copies of the slice header, never modified records.
type Record struct {
	// Title is "<A> <B>: <C> <D>" assembled from four vocabularies.
	Title string `json:"title" yaml:"title"`

	// Authors is the "; "-joined author list (e.g. "Author 1; Author 2").
	Authors string `json:"authors" yaml:"authors"`

	// Journal is one of the fixed journal vocabulary entries.
	Journal string `json:"journal" yaml:"journal"`

	// PublishTime is the publication date in YYYY-MM-DD format.
	PublishTime string `json:"publish_time" yaml:"publish_time"`

	// Source is the corpus source the paper came from (PMC, WHO, arXiv, ...).
	Source string `json:"source_x" yaml:"source_x"`

	// AbstractLength is the abstract length in characters, never below 500.
	AbstractLength int `json:"abstract_length" yaml:"abstract_length"`

	// PublicationYear duplicates the year of PublishTime for fast filtering.
	PublicationYear int `json:"publication_year" yaml:"publication_year"`

	// AuthorCount is the number of entries in Authors.
	AuthorCount int `json:"author_count" yaml:"author_count"`
}

// SourceAll is the source selector value that matches every source.
const SourceAll = "All"

// Range is an inclusive integer interval. A range with Lo > Hi is empty.
type Range struct {
	Lo int `json:"lo" yaml:"lo"`
	Hi int `json:"hi" yaml:"hi"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// IsEmpty reports whether no value can satisfy the range.
func (r Range) IsEmpty() bool {
	return r.Lo > r.Hi
}
