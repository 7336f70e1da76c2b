package facadex

const (
	// DefaultMaxDepth bounds the nesting depth of parsed input.
	DefaultMaxDepth = 1000
	// DefaultMaxInputBytes bounds the size of the raw input buffer.
	DefaultMaxInputBytes = 64 << 20
)

// Option configures conversion behavior.
type Option func(*Options)

// Options configures conversion limits.
// Zero values use defaults. Use negative values to disable specific limits.
type Options struct {
	// MaxDepth limits input nesting depth for untrusted input.
	MaxDepth int
	// MaxInputBytes limits the raw input size in bytes.
	MaxInputBytes int64
}

// DefaultOptions returns safe defaults for conversion limits.
func DefaultOptions() Options {
	return Options{
		MaxDepth:      DefaultMaxDepth,
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

func normalizeOptions(opts Options) Options {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputBytes == 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}
	return opts
}

// OptMaxDepth sets the maximum nesting depth limit.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptMaxInputBytes sets the maximum input size limit.
func OptMaxInputBytes(maxBytes int64) Option {
	return func(opts *Options) {
		opts.MaxInputBytes = maxBytes
	}
}

// depthExceeded reports whether depth is over the configured limit.
// A negative limit disables the check.
func (o Options) depthExceeded(depth int) bool {
	return o.MaxDepth >= 0 && depth > o.MaxDepth
}
