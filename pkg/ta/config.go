package ta

// Config selects which validation tiers a kernel call runs and how the
// region before the lookback index is treated. It is passed by value into
// every batch and incremental kernel, so strict and "trust the caller"
// calls can be mixed freely at runtime.
type Config struct {
	// CheckStructure enables the empty, insufficient-data and length checks.
	CheckStructure bool `json:"checkStructure" yaml:"checkStructure" mapstructure:"checkStructure"`

	// CheckNaN enables the NaN scan over inputs and previous state.
	CheckNaN bool `json:"checkNaN" yaml:"checkNaN" mapstructure:"checkNaN"`

	// FillNaN writes NaN into every output index before the lookback.
	// When false those indices keep whatever the caller put there.
	FillNaN bool `json:"fillNaN" yaml:"fillNaN" mapstructure:"fillNaN"`
}

// DefaultConfig runs every check and fills the invalid region with NaN.
var DefaultConfig = Config{
	CheckStructure: true,
	CheckNaN:       true,
	FillNaN:        true,
}

// TrustedConfig disables every check. Use it on hot paths whose inputs are
// already known to be well-formed.
var TrustedConfig = Config{}

// WithoutChecks returns c with the validation tiers turned off and the fill
// policy kept. Composite kernels pass it to their sub-kernels once the
// composite call has validated the inputs itself.
func (c Config) WithoutChecks() Config {
	return Config{FillNaN: c.FillNaN}
}
