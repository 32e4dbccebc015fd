package exports

import (
	"github.com/erraggy/oacontract/parser"
)

// Option configures Build.
type Option func(*config) error

type config struct {
	logger   parser.Logger
	reserved []string
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

// WithLogger sets the logger used to report identifier collisions.
// A nil logger disables logging.
func WithLogger(l parser.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = parser.LoggerOrNop(l)
		return nil
	}
}

// WithReserved adds identifiers that schemas must not be exported as,
// such as the name of the router constant.
func WithReserved(names ...string) Option {
	return func(cfg *config) error {
		cfg.reserved = append(cfg.reserved, names...)
		return nil
	}
}
