package graph

// File holds the identifiers discovered in a single source file, in
// traversal order.
type File struct {
	Path        string       `yaml:"path"`
	Hash        uint64       `yaml:"hash,omitempty"`
	Identifiers []Identifier `yaml:"identifiers,omitempty"`
}
