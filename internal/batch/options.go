package batch

import "log/slog"

// Option configures Commands during creation.
type Option func(*config)

type config struct {
	shaderFormat ShaderFormat
	label        string
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		shaderFormat: ShaderWGSL,
		label:        "batch",
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithShaderFormat selects WGSL (default) or naga-compiled SPIR-V.
func WithShaderFormat(f ShaderFormat) Option {
	return func(c *config) {
		c.shaderFormat = f
	}
}

// WithLabel sets the prefix for GPU object labels.
func WithLabel(label string) Option {
	return func(c *config) {
		if label != "" {
			c.label = label
		}
	}
}

// WithLogger sets the logger for pipeline diagnostics. nil keeps the
// silent default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
