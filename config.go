package quickcheck

import "os"

// verboseEnvVar, if set to any value, turns on informational progress
// output in DefaultConfig.
const verboseEnvVar = "QUICKCHECK_VERBOSE"

// Config controls one run of the driver.
type Config struct {
	// Tests is how many passing trials to collect before declaring
	// success.
	Tests int
	// MaxTests caps total generation attempts, including discards, so a
	// property that discards almost everything gives up instead of
	// looping forever.
	MaxTests int
	// MinSize and MaxSize bound the size parameter handed to generators
	// across the run; size steps up by one per trial from MinSize and
	// wraps back to MinSize after MaxSize.
	MinSize int
	MaxSize int
	// Seed fixes the random source when HasSeed is true. Leave HasSeed
	// false to draw a fresh seed per run.
	Seed    int64
	HasSeed bool
	// Verbose enables the default log-backed Reporter's output.
	Verbose bool
	// Reporter receives progress events. Nil means use the default,
	// built from Verbose.
	Reporter Reporter
}

// DefaultConfig returns the configuration used by Check: 100 passing
// trials, a generation budget ten times that, sizes from 0 to 100, a
// fresh seed, and verbosity read once from QUICKCHECK_VERBOSE.
func DefaultConfig() Config {
	_, verbose := os.LookupEnv(verboseEnvVar)
	return Config{
		Tests:    100,
		MaxTests: 1000,
		MinSize:  0,
		MaxSize:  100,
		Verbose:  verbose,
	}
}

// Opt configures a Config built with New.
type Opt func(*Config)

// WithTests sets the number of passing trials required for success.
func WithTests(n int) Opt { return func(c *Config) { c.Tests = n } }

// WithMaxTests sets the cap on total generation attempts.
func WithMaxTests(n int) Opt { return func(c *Config) { c.MaxTests = n } }

// WithSize sets the size range generators are driven across.
func WithSize(min, max int) Opt {
	return func(c *Config) { c.MinSize = min; c.MaxSize = max }
}

// WithSeed fixes the random source to seed.
func WithSeed(seed int64) Opt {
	return func(c *Config) { c.Seed = seed; c.HasSeed = true }
}

// WithVerbose turns the default Reporter's output on or off.
func WithVerbose(v bool) Opt { return func(c *Config) { c.Verbose = v } }

// WithReporter overrides the Reporter used for progress events.
func WithReporter(r Reporter) Opt { return func(c *Config) { c.Reporter = r } }

// New builds a Config starting from DefaultConfig and applying opts in
// order.
func New(opts ...Opt) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
