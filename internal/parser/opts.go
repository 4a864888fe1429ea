package parser

// DefaultMaxDepth bounds nesting of parentheses, function calls, prefix
// operators and exponent chains.
const DefaultMaxDepth = 256

type parserOpts struct {
	maxDepth int
}

var defaultParserOpts = parserOpts{
	maxDepth: DefaultMaxDepth,
}

type Option func(*parserOpts)

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values restore the default.
func WithMaxDepth(depth int) Option {
	return func(opts *parserOpts) {
		opts.maxDepth = depth
	}
}

func newParserOpts(options ...Option) *parserOpts {
	opts := defaultParserOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.maxDepth <= 0 {
		opts.maxDepth = DefaultMaxDepth
	}

	return &opts
}
