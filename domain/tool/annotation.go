// Package tool provides the domain model for host-invokable tools.
package tool

// Annotations are behavioral hints a host can use for planning and caching.
type Annotations struct {
	// ReadOnly indicates the tool never modifies its environment.
	ReadOnly bool `json:"read_only"`

	// Idempotent indicates repeated calls with the same input yield the same result.
	Idempotent bool `json:"idempotent"`

	// Cacheable indicates the host may cache results.
	Cacheable bool `json:"cacheable"`

	// Tags are arbitrary labels for categorization.
	Tags []string `json:"tags,omitempty"`
}

// CanCache returns true if the host may cache the tool result.
func (a Annotations) CanCache() bool {
	return a.Cacheable && (a.ReadOnly || a.Idempotent)
}

// HasTag reports whether the tool carries the given tag.
func (a Annotations) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
