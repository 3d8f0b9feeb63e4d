package dictionary

import "github.com/h2gb/h2core/internal/options"

// config holds the knobs New can be tuned with via functional options.
type config struct {
	allowDuplicateKeys bool
}

// Option configures a Dictionary at construction time.
type Option = options.Option[*config]

// WithAllowDuplicateKeys disables the duplicate-key check when loading
// enum and bitmask CSV tables: a later row for the same key silently
// overwrites an earlier one instead of failing the load.
func WithAllowDuplicateKeys() Option {
	return options.NoError(func(c *config) {
		c.allowDuplicateKeys = true
	})
}
