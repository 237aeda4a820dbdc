package python

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/viant/identicount/counter/graph"
)

// Inspector parses Python source code and extracts every declared
// identifier together with its line location.
type Inspector struct {
	config *graph.Config
}

// NewInspector creates a new Python Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{config: config}
}

// InspectSource parses Python source code from a byte slice and extracts identifiers
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.Inspect(src, "source.py")
}

// InspectFile parses a Python source file and extracts identifiers
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.Inspect(src, filename)
}

// Inspect parses src into a syntax tree and returns the identifiers
// declared in it, in pre-order traversal order. Source that does not
// form a well-formed tree yields a *SyntaxError.
func (i *Inspector) Inspect(src []byte, filename string) (*graph.File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, &SyntaxError{Path: filename, Line: firstErrorLine(root)}
	}

	hash, err := graph.Hash(src)
	if err != nil {
		return nil, err
	}

	return &graph.File{
		Path:        filename,
		Hash:        hash,
		Identifiers: Visit(root, src, i.config.Receiver),
	}, nil
}

// SyntaxError reports a source file that could not be parsed into a
// well-formed syntax tree.
type SyntaxError struct {
	Path string
	Line int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: invalid syntax", e.Path, e.Line)
}

// firstErrorLine locates the shallowest malformed node so the diagnostic
// points at the offending line rather than the file start.
func firstErrorLine(node *sitter.Node) int {
	if node.Type() == "ERROR" {
		return int(node.StartPoint().Row) + 1
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		if child := node.Child(j); child.HasError() {
			return firstErrorLine(child)
		}
	}
	return int(node.StartPoint().Row) + 1
}
