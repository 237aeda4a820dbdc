package graph

// Kind classifies a declared identifier.
type Kind string

const (
	Variable     Kind = "variable"
	FuncOrMethod Kind = "func_or_method"
	Class        Kind = "class"
	Parameter    Kind = "parameter"
)
