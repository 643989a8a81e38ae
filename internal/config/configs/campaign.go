package configs

// Campaign holds campaign lifecycle options.
type Campaign struct {
	// StrictTransitions enforces adjacency between statuses instead of
	// accepting any enumerated status from any state.
	StrictTransitions bool `env:"STRICT_TRANSITIONS" envDefault:"false"`
}
