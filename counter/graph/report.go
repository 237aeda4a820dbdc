package graph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report holds the per-file record lists of one analysis run, in
// resolution order. It is read-only once handed to a renderer.
type Report struct {
	Files []*File `yaml:"files"`
}

// Empty reports whether the run resolved no analyzable files.
func (r *Report) Empty() bool {
	return len(r.Files) == 0
}

// Total returns the number of identifier records across all files.
func (r *Report) Total() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Identifiers)
	}
	return total
}

// Render writes the report at the requested verbosity: 0 emits one count
// line per file, 1 one line per (file, kind) pair in first-seen kind
// order, 2 and above one line per identifier in traversal order.
func (r *Report) Render(w io.Writer, verbosity int) {
	for _, file := range r.Files {
		switch {
		case verbosity <= 0:
			fmt.Fprintf(w, "%s: %d\n", file.Path, len(file.Identifiers))
		case verbosity == 1:
			counts := make(map[Kind]int)
			var order []Kind
			for _, identifier := range file.Identifiers {
				if _, seen := counts[identifier.Kind]; !seen {
					order = append(order, identifier.Kind)
				}
				counts[identifier.Kind]++
			}
			for _, kind := range order {
				fmt.Fprintf(w, "%s: %s %d\n", file.Path, kind, counts[kind])
			}
		default:
			for _, identifier := range file.Identifiers {
				fmt.Fprintf(w, "%s:%d: %s '%s'\n", file.Path, identifier.Line, identifier.Kind, identifier.Name)
			}
		}
	}
}

// YAML returns the machine-readable form of the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
