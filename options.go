package herald

import "github.com/rs/zerolog"

// Option configures an Event at construction time.
type Option func(*eventConfig)

// eventConfig contains configuration for an event.
type eventConfig struct {
	// log receives debug records for subscribe, unsubscribe and
	// broadcast activity.
	log zerolog.Logger
}

// defaultEventConfig returns sensible default configuration.
func defaultEventConfig() eventConfig {
	return eventConfig{
		log: zerolog.Nop(),
	}
}

// WithLogger sets the logger that receives subscribe, unsubscribe and
// broadcast debug records. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *eventConfig) {
		c.log = log
	}
}
