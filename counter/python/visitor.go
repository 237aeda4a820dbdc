package python

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/identicount/counter/graph"
)

// receiverName is the conventional name of the instance parameter on
// methods. Suppression is an exact literal match, not method analysis:
// a plain function whose first parameter happens to be named "self"
// loses that parameter record too.
const receiverName = "self"

type handlerFunc func(t *traverser, node *sitter.Node)

// handlers maps node kinds to emission handlers; kinds without an entry
// are descended into without producing a record. Populated in init to
// break the reference cycle with walk.
var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		"assignment":          (*traverser).onAssignment,
		"function_definition": (*traverser).onFunctionDef,
		"class_definition":    (*traverser).onClassDef,
	}
}

// Visit walks the tree pre-order and returns every declared identifier
// in emission order. It is deterministic and shares no state between
// invocations. Identifiers created through dynamic mechanisms such as
// type("Name", (), {}) are not detected.
func Visit(root *sitter.Node, src []byte, receiver string) []graph.Identifier {
	if receiver == "" {
		receiver = receiverName
	}
	t := &traverser{src: src, receiver: receiver}
	t.walk(root)
	return t.records
}

type traverser struct {
	src      []byte
	receiver string
	records  []graph.Identifier
}

func (t *traverser) walk(node *sitter.Node) {
	if handler, ok := handlers[node.Type()]; ok {
		handler(t, node)
		return
	}
	for j := 0; j < int(node.NamedChildCount()); j++ {
		t.walk(node.NamedChild(j))
	}
}

func (t *traverser) emit(name string, kind graph.Kind, line int) {
	if name == "" {
		return
	}
	t.records = append(t.records, graph.Identifier{Name: name, Kind: kind, Line: line})
}

func lineOf(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// onAssignment emits one variable record per simple name target at the
// statement line. Chained targets (a = b = value) unwrap through the
// right side; annotated declarations with or without an initializer are
// the same node kind and yield one record each. Tuple, attribute and
// subscript targets produce nothing, and assignment values are not
// descended into.
func (t *traverser) onAssignment(node *sitter.Node) {
	line := lineOf(node)
	for current := node; current != nil; {
		if left := current.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
			t.emit(left.Content(t.src), graph.Variable, line)
		}
		right := current.ChildByFieldName("right")
		if right == nil || right.Type() != "assignment" {
			return
		}
		current = right
	}
}

// onFunctionDef emits the definition record before its parameters, then
// recurses into the body so nested definitions are discovered at any depth.
func (t *traverser) onFunctionDef(node *sitter.Node) {
	if name := node.ChildByFieldName("name"); name != nil {
		t.emit(name.Content(t.src), graph.FuncOrMethod, lineOf(node))
	}
	t.collectParameters(node.ChildByFieldName("parameters"))
	if body := node.ChildByFieldName("body"); body != nil {
		t.walk(body)
	}
}

func (t *traverser) onClassDef(node *sitter.Node) {
	if name := node.ChildByFieldName("name"); name != nil {
		t.emit(name.Content(t.src), graph.Class, lineOf(node))
	}
	if body := node.ChildByFieldName("body"); body != nil {
		t.walk(body)
	}
}

// Named parameters keep declaration order; the variadic positional
// parameter follows them and the variadic keyword parameter comes last.
const (
	namedParam = iota
	listSplatParam
	dictSplatParam
)

type parameter struct {
	name     string
	line     int
	category int
}

func (t *traverser) collectParameters(params *sitter.Node) {
	if params == nil {
		return
	}
	var collected []parameter
	for j := 0; j < int(params.NamedChildCount()); j++ {
		if p, ok := t.parameterOf(params.NamedChild(j)); ok {
			collected = append(collected, p)
		}
	}
	if len(collected) > 0 && collected[0].category == namedParam && collected[0].name == t.receiver {
		collected = collected[1:]
	}
	for _, category := range []int{namedParam, listSplatParam, dictSplatParam} {
		for _, p := range collected {
			if p.category == category {
				t.emit(p.name, graph.Parameter, p.line)
			}
		}
	}
}

// parameterOf classifies a single child of a "parameters" node.
// Separators ("/", "*") and patterns without a simple name are skipped.
func (t *traverser) parameterOf(node *sitter.Node) (parameter, bool) {
	switch node.Type() {
	case "identifier":
		return parameter{name: node.Content(t.src), line: lineOf(node), category: namedParam}, true
	case "default_parameter", "typed_default_parameter":
		if name := node.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			return parameter{name: name.Content(t.src), line: lineOf(node), category: namedParam}, true
		}
	case "typed_parameter":
		if node.NamedChildCount() > 0 {
			return t.parameterOf(node.NamedChild(0))
		}
	case "list_splat_pattern":
		if name := firstIdentifier(node, t.src); name != "" {
			return parameter{name: name, line: lineOf(node), category: listSplatParam}, true
		}
	case "dictionary_splat_pattern":
		if name := firstIdentifier(node, t.src); name != "" {
			return parameter{name: name, line: lineOf(node), category: dictSplatParam}, true
		}
	}
	return parameter{}, false
}

func firstIdentifier(node *sitter.Node, src []byte) string {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		if child := node.NamedChild(j); child.Type() == "identifier" {
			return child.Content(src)
		}
	}
	return ""
}
