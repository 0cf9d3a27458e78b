package identity

import (
	"strings"

	"chartgrip/internal/domain"
)

// ScopeIdentity identifies a slice of the dataset by the scopes it pins
// down: a category, a series, a measure, or any combination. Fewer pinned
// scopes means a broader identity.
type ScopeIdentity struct {
	category string
	series   string
	measure  string
}

// New creates an identity directly from its scope values. Empty strings
// leave that scope unpinned.
func New(category, series, measure string) *ScopeIdentity {
	return &ScopeIdentity{category: category, series: series, measure: measure}
}

// Category returns the pinned category scope ("" if unpinned)
func (s *ScopeIdentity) Category() string { return s.category }

// Series returns the pinned series scope ("" if unpinned)
func (s *ScopeIdentity) Series() string { return s.series }

// Measure returns the measure scope ("" if unpinned)
func (s *ScopeIdentity) Measure() string { return s.measure }

// Includes reports whether this identity contains other. Every scope this
// identity pins must be pinned to the same value in other; scopes left
// unpinned here match anything. A category-level identity therefore
// includes every category×series point under it, but not vice versa.
func (s *ScopeIdentity) Includes(other domain.Identity) bool {
	o, ok := other.(*ScopeIdentity)
	if !ok || o == nil {
		return false
	}
	// A measure-only fallback never contains concrete identities; it only
	// matches other fallbacks for the same measure.
	if !s.HasIdentity() {
		return !o.HasIdentity() && s.measure == o.measure
	}
	if s.category != "" && s.category != o.category {
		return false
	}
	if s.series != "" && s.series != o.series {
		return false
	}
	if s.measure != "" && s.measure != o.measure {
		return false
	}
	return true
}

// HasIdentity reports whether this identity is bound to concrete data.
// Measure-only identities are synthetic fallbacks and return false.
func (s *ScopeIdentity) HasIdentity() bool {
	return s.category != "" || s.series != ""
}

// Key returns the canonical "category|series|measure" form
func (s *ScopeIdentity) Key() string {
	return s.category + "|" + s.series + "|" + s.measure
}

// FromKey rebuilds an identity from its Key form. Malformed keys yield a
// fully unpinned identity rather than an error.
func FromKey(key string) *ScopeIdentity {
	parts := strings.SplitN(key, "|", 3)
	id := &ScopeIdentity{}
	if len(parts) > 0 {
		id.category = parts[0]
	}
	if len(parts) > 1 {
		id.series = parts[1]
	}
	if len(parts) > 2 {
		id.measure = parts[2]
	}
	return id
}

// Builder assembles a ScopeIdentity one scope at a time, the way a visual
// builds identities while walking its data view.
type Builder struct {
	id ScopeIdentity
}

// NewBuilder creates an empty identity builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCategory pins the category scope
func (b *Builder) WithCategory(category string) *Builder {
	b.id.category = category
	return b
}

// WithSeries pins the series scope
func (b *Builder) WithSeries(series string) *Builder {
	b.id.series = series
	return b
}

// WithMeasure sets the measure scope
func (b *Builder) WithMeasure(measure string) *Builder {
	b.id.measure = measure
	return b
}

// Create returns the assembled identity
func (b *Builder) Create() *ScopeIdentity {
	id := b.id
	return &id
}
