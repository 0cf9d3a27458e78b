package domain

// Identity is an opaque selection key for a data point, category or series.
// Membership checks always go through Includes, never through equality,
// because a broader identity (a whole category) subsumes narrower ones
// (a category×series point).
type Identity interface {
	// Includes reports whether this identity contains other.
	// The test is asymmetric: a category-level identity includes every
	// point under that category, but not the other way around.
	Includes(other Identity) bool

	// HasIdentity reports whether this identity is bound to a concrete
	// data instance. Measure-only fallback identities return false.
	HasIdentity() bool

	// Key returns a stable string key for maps and serialization.
	Key() string
}

// DataPoint pairs a selection flag with the identity it is keyed by.
// The interactivity engine owns the Selected flag and rewrites it in place
// during sync; callers read it after any engine call returns.
type DataPoint struct {
	Selected bool
	Identity Identity

	// SpecificIdentity is an optional finer-grained key used by behaviors
	// for their own checks. The engine's sync never examines it.
	SpecificIdentity Identity
}
