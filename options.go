package chatblocks

// Options holds options for parsing and rendering.
type Options struct {
	Config *RenderConfig
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *Options) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithListPolicy overrides how blank lines affect numbered list runs.
// The shared default config is never modified.
func WithListPolicy(policy ListPolicy) Option {
	return func(opts *Options) {
		cfg := *opts.Config
		cfg.ListPolicy = policy
		opts.Config = &cfg
	}
}

// WithLinkTextLimit overrides the rune limit for rendered link text.
func WithLinkTextLimit(limit int) Option {
	return func(opts *Options) {
		cfg := *opts.Config
		cfg.LinkTextLimit = limit
		opts.Config = &cfg
	}
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
