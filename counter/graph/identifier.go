package graph

// Identifier is a single declared name discovered in analyzed source.
// Records are immutable once emitted.
type Identifier struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	Line int    `yaml:"line"`
}
