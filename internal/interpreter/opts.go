package interpreter

type interpreterOpts struct {
	trace bool
}

var defaultInterpreterOpts = interpreterOpts{
	trace: false,
}

type InterpreterOption func(*interpreterOpts)

// WithTrace turns the evaluation trace on or off.
func WithTrace(enabled bool) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.trace = enabled
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	return &opts
}
