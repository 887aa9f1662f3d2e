// This file implements the fluent builder API for creating nodes.
// The builder is immutable - each method returns a new builder with the
// updated configuration.

package violin

import "github.com/kbknapp/violin/vecd"

// New creates a node builder. proto is a vector fixing the dimensionality and
// storage strategy of the node's coordinate; its components become the
// initial position unless Rand is used.
//
// Example:
//
//	node, err := violin.New(vecd.NewInline(8)).
//	    Ce(0.25).
//	    Cc(0.25).
//	    Rand(rng).
//	    Build()
func New[V vecd.Vector[V]](proto V) NodeBuilder[V] {
	return NodeBuilder[V]{
		proto: proto,
		cfg:   *DefaultConfig(),
		err:   DefaultError,
	}
}

// NodeBuilder is an immutable fluent builder for creating Nodes.
// Each method returns a new builder with the updated configuration.
type NodeBuilder[V vecd.Vector[V]] struct {
	proto   V
	cfg     Config
	err     float64
	height  float64
	offset  float64
	rng     vecd.RandomSource
	logger  *Logger
	metrics MetricsCollector
}

// Ce sets the error-smoothing sensitivity. Default: 0.25.
func (b NodeBuilder[V]) Ce(ce float64) NodeBuilder[V] {
	b.cfg.Ce = ce
	return b
}

// Cc sets the position sensitivity controlling the adaptive step size.
// Default: 0.25.
func (b NodeBuilder[V]) Cc(cc float64) NodeBuilder[V] {
	b.cfg.Cc = cc
	return b
}

// ErrorMax caps the smoothed local error estimate. Default: 1.5.
func (b NodeBuilder[V]) ErrorMax(max float64) NodeBuilder[V] {
	b.cfg.ErrorMax = max
	return b
}

// HeightMin sets the floor for the height term while AdaptiveHeight is
// enabled. Default: 10e-6.
func (b NodeBuilder[V]) HeightMin(min float64) NodeBuilder[V] {
	b.cfg.HeightMin = min
	return b
}

// AdaptiveHeight enables or disables height participation in updates.
// Default: disabled, the height stays fixed after initialization.
func (b NodeBuilder[V]) AdaptiveHeight(enabled bool) NodeBuilder[V] {
	b.cfg.AdaptiveHeight = enabled
	return b
}

// GravityRho sets the gravity scale used by ApplyGravity. Default: 150.
func (b NodeBuilder[V]) GravityRho(rho float64) NodeBuilder[V] {
	b.cfg.GravityRho = rho
	return b
}

// Error sets the initial local error estimate. Default: DefaultError.
func (b NodeBuilder[V]) Error(err float64) NodeBuilder[V] {
	b.err = err
	return b
}

// Height sets the initial height term. Negative values are clamped to zero.
func (b NodeBuilder[V]) Height(height float64) NodeBuilder[V] {
	b.height = height
	return b
}

// Offset sets the initial manual distance offset. Negative values are clamped
// to zero.
func (b NodeBuilder[V]) Offset(offset float64) NodeBuilder[V] {
	b.offset = offset
	return b
}

// Rand randomizes the initial position via rng so nodes don't start out
// overlapping one another; components are drawn from [-10ms, 10ms). rng is
// used once at Build time and not retained.
func (b NodeBuilder[V]) Rand(rng vecd.RandomSource) NodeBuilder[V] {
	b.rng = rng
	return b
}

// Logger configures structured logging for node operations.
// Defaults to a no-op logger.
func (b NodeBuilder[V]) Logger(logger *Logger) NodeBuilder[V] {
	b.logger = logger
	return b
}

// Metrics configures a metrics collector for node operations.
// Defaults to a no-op collector.
func (b NodeBuilder[V]) Metrics(mc MetricsCollector) NodeBuilder[V] {
	b.metrics = mc
	return b
}

// Build validates the configuration and creates the Node.
func (b NodeBuilder[V]) Build() (*Node[V], error) {
	if b.proto.Dim() < 1 {
		return nil, &ErrInvalidDimension{Dimension: b.proto.Dim()}
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	if b.err < 0 || !finite(b.err) {
		return nil, &ErrInvalidError{Estimate: b.err}
	}

	coord := Coord[V]{Vec: b.proto, Error: b.err}
	if b.rng != nil {
		coord = RandCoord(b.proto, b.rng)
		coord.Error = b.err
	}
	coord = coord.WithHeight(b.height).WithOffset(b.offset)

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}
	var mc MetricsCollector = b.metrics
	if mc == nil {
		mc = NoopMetricsCollector{}
	}

	cfg := b.cfg
	return &Node[V]{
		coord:   coord,
		cfg:     &cfg,
		logger:  logger.WithDimension(coord.Vec.Dim()),
		metrics: mc,
	}, nil
}
