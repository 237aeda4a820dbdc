package graph

// Config controls source selection and traversal behaviour.
type Config struct {
	Include  string // filename pattern selecting analyzable sources
	Exclude  string // optional filename pattern removing sources
	Receiver string // conventional receiver parameter name
}

// DefaultConfig selects Python sources and interface stubs.
func DefaultConfig() *Config {
	return &Config{
		Include:  `\.pyi?$`,
		Receiver: "self",
	}
}
