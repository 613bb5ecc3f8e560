package lirs

import "go.uber.org/zap"

const defaultHIRRatio = 0.01

// Option configures a [Cache] at construction time.
type Option interface {
	apply(*options)
}

type options struct {
	hirRatio float64
	logger   *zap.Logger
}

func defaultOptions() options {
	return options{
		hirRatio: defaultHIRRatio,
		logger:   zap.NewNop(),
	}
}

type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithHIRRatio overrides the default HIR ratio (0.01). ratio must lie in
// the open interval (0,1); an out-of-range value is rejected by [New], not
// by this option.
func WithHIRRatio(ratio float64) Option {
	return optionFunc(func(o *options) {
		o.hirRatio = ratio
	})
}

// WithLogger attaches a diagnostic logger. The logger never influences
// policy decisions; it only receives Debug-level entries describing
// reorganisation events and a rejected HIR ratio in [New]. If unset, a
// no-op logger is used.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	})
}
