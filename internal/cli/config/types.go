package config

// Default configuration values.
const (
	DefaultOutput        = "turtle"
	DefaultMaxDepth      = 1000
	DefaultMaxInputBytes = 64 << 20
)

// Config holds the resolved CLI configuration.
type Config struct {
	// Format is the declared source format; empty means infer from the
	// input file extension.
	Format string `koanf:"format"`
	// Output is the RDF serialization of the result.
	Output string `koanf:"output"`
	// MaxDepth bounds input nesting depth.
	MaxDepth int `koanf:"max_depth"`
	// MaxInputBytes bounds input size.
	MaxInputBytes int64 `koanf:"max_input_bytes"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
