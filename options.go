package relu

type options struct {
	logger *Logger
}

// Option configures a Verifier.
type Option func(*options)

// WithLogger sets the logger used to report verification results and the
// missing-acceleration notice.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}
