package suffixtree

import "go.uber.org/zap"

type buildConfig struct {
	logger *zap.Logger
}

// BuildOption configures a call to Build.
type BuildOption func(*buildConfig)

// WithLogger attaches a logger that receives one Debug record per extension
// round (one per character of the text, sentinel included) during
// construction. The default is a no-op logger, so
// tracing costs nothing unless explicitly requested.
func WithLogger(logger *zap.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = logger
	}
}
