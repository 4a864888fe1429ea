package engine

import "github.com/leonardinius/mathexpr/internal/parser"

type engineOpts struct {
	trace    bool
	maxDepth int
}

var defaultEngineOpts = engineOpts{
	trace:    true,
	maxDepth: parser.DefaultMaxDepth,
}

type Option func(*engineOpts)

// WithTrace turns the evaluation trace on or off. Tracing is on by default.
func WithTrace(enabled bool) Option {
	return func(opts *engineOpts) {
		opts.trace = enabled
	}
}

// WithMaxDepth limits expression nesting, see parser.WithMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(opts *engineOpts) {
		opts.maxDepth = depth
	}
}

func newEngineOpts(options ...Option) *engineOpts {
	opts := defaultEngineOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
