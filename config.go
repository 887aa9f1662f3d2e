package violin

import "fmt"

// Config holds the tunable constants of the coordinate update algorithm.
// DefaultConfig returns values that work well for most deployments; they only
// need revisiting when convergence speed or stability is a problem.
type Config struct {
	// Ce controls how quickly the smoothed local error estimate adapts to new
	// samples. Must be in (0, 1].
	Ce float64

	// Cc controls the adaptive step size of coordinate movement. Must be in
	// (0, 1].
	Cc float64

	// ErrorMax caps the smoothed local error estimate so a run of wildly
	// inconsistent samples cannot blow up the node's uncertainty.
	ErrorMax float64

	// HeightMin is the floor applied to the height term while AdaptiveHeight
	// is enabled, keeping the height strictly positive once it participates
	// in updates.
	HeightMin float64

	// AdaptiveHeight lets the height term absorb a proportional share of each
	// update's force. When false the height stays fixed after initialization.
	AdaptiveHeight bool

	// GravityRho scales the pull of ApplyGravity toward the origin; larger
	// values mean weaker gravity.
	GravityRho float64
}

// DefaultConfig returns a Config with the reference constants.
func DefaultConfig() *Config {
	return &Config{
		Ce:         0.25,
		Cc:         0.25,
		ErrorMax:   1.5,
		HeightMin:  10.0e-6,
		GravityRho: 150.0,
	}
}

// Validate reports whether every constant is inside its allowed range.
func (c *Config) Validate() error {
	switch {
	case c.Ce <= 0 || c.Ce > 1:
		return fmt.Errorf("%w: Ce must be in (0, 1], got %v", ErrInvalidConfig, c.Ce)
	case c.Cc <= 0 || c.Cc > 1:
		return fmt.Errorf("%w: Cc must be in (0, 1], got %v", ErrInvalidConfig, c.Cc)
	case c.ErrorMax <= 0:
		return fmt.Errorf("%w: ErrorMax must be positive, got %v", ErrInvalidConfig, c.ErrorMax)
	case c.HeightMin < 0:
		return fmt.Errorf("%w: HeightMin must be non-negative, got %v", ErrInvalidConfig, c.HeightMin)
	case c.GravityRho <= 0:
		return fmt.Errorf("%w: GravityRho must be positive, got %v", ErrInvalidConfig, c.GravityRho)
	}
	return nil
}
