package operations

import "github.com/erraggy/oacontract/parser"

// Option configures Extract.
type Option func(*config) error

type config struct {
	logger parser.Logger
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{logger: parser.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the logger for skipped paths and non-standard status codes.
func WithLogger(l parser.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = parser.LoggerOrNop(l)
		return nil
	}
}
