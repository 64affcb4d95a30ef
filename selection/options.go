package selection

import "go.uber.org/zap"

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *zap.Logger
	name   string
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger routes engine diagnostics to l: transitions at Debug, terminal
// outcomes at Info. Panics on nil; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("selection: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithName names the engine's logger, which helps when an embedding runs
// several selections (one per screen, say).
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
