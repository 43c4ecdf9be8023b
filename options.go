package pbwt

import (
	"github.com/hupe1980/pbwt/codec"
)

type options struct {
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
}

// Option configures builders and matrix transformations.
type Option func(*options)

// WithCodec configures the block codec for newly written sites.
//
// If nil is passed, codec.Default is used. SubSample defaults to the
// source matrix's codec.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger sets the logger. Logging is disabled by default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}
