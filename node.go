package violin

import (
	"math"
	"time"

	"github.com/kbknapp/violin/vecd"
)

// Node owns one coordinate and moves it toward consistency with observed
// round-trip times using the Vivaldi update rule.
//
// A Node is single-writer: concurrent calls on the same Node require external
// synchronization. Distinct Nodes are fully independent.
type Node[V vecd.Vector[V]] struct {
	coord   Coord[V]
	cfg     *Config
	logger  *Logger
	metrics MetricsCollector
}

// Coordinate returns a read-only snapshot of the node's current coordinate.
func (n *Node[V]) Coordinate() Coord[V] { return n.coord }

// Error returns the node's current local error estimate.
func (n *Node[V]) Error() float64 { return n.coord.Error }

// SetHeight sets the coordinate's height term. Negative heights are clamped
// to zero.
func (n *Node[V]) SetHeight(height float64) { n.coord = n.coord.WithHeight(height) }

// SetOffset sets the coordinate's manual distance offset. Negative offsets
// are clamped to zero.
func (n *Node[V]) SetOffset(offset float64) { n.coord = n.coord.WithOffset(offset) }

// DistanceTo estimates the round-trip time to peer from the current
// coordinates.
func (n *Node[V]) DistanceTo(peer Coord[V]) time.Duration {
	return time.Duration(n.coord.DistanceTo(peer) * float64(time.Second))
}

// Update moves the node's coordinate toward consistency with one freshly
// measured round-trip time to peer and re-estimates the local error. It
// reports whether the sample was applied.
//
// Non-positive measurements are skipped, leaving the state untouched, as is
// any sample that would push the coordinate to a non-finite position. A high
// peer error estimate reduces the force applied to this node's movement: the
// peer is asserting it is less confident in its own position.
//
// rng is only consulted when the two coordinates coincide, to pick the
// direction along which they separate.
func (n *Node[V]) Update(rtt time.Duration, peer Coord[V], rng vecd.RandomSource) bool {
	rttSec := rtt.Seconds()
	if rttSec <= 0 || !finite(rttSec) {
		n.logger.LogUpdateSkipped(rtt)
		n.metrics.RecordSkip(rtt)
		return false
	}

	estimated := n.coord.RawDistanceTo(peer)

	// Bound the influence of a single wildly inconsistent sample.
	relativeErr := math.Min(math.Abs(estimated-rttSec)/rttSec, 1)

	// Sample weight balances local and peer error: a high local error means
	// greater movement, a high peer error means less. Equal mutual trust when
	// both sides claim perfect confidence.
	weight := 0.5
	if total := n.coord.Error + peer.Error; total > 0 {
		weight = n.coord.Error / total
	}

	// Exponentially smoothed moving average of the local error.
	localErr := relativeErr*n.cfg.Ce*weight + n.coord.Error*(1-n.cfg.Ce*weight)
	localErr = math.Min(localErr, n.cfg.ErrorMax)

	// Spring force: away from peer when the sample implies the true distance
	// is larger than estimated, toward it when smaller.
	force := n.cfg.Cc * weight * (rttSec - estimated)

	next := n.applyForce(n.coord, peer, force, rng)
	next.Error = localErr
	if !next.IsFinite() {
		n.logger.LogUpdateRejected(rtt, estimated)
		n.metrics.RecordSkip(rtt)
		return false
	}

	n.coord = next
	n.logger.LogUpdate(rtt, estimated, relativeErr)
	n.metrics.RecordUpdate(rtt, relativeErr)
	return true
}

// ApplyGravity pulls the coordinate back toward origin to keep a quiet
// cluster from drifting away from the rest of the coordinate space. Call it
// periodically with the shared origin coordinate.
func (n *Node[V]) ApplyGravity(origin Coord[V], rng vecd.RandomSource) {
	relative := n.coord.DistanceTo(origin) / n.cfg.GravityRho
	force := -1 * relative * relative

	next := n.applyForce(n.coord, origin, force, rng)
	if !next.IsFinite() {
		return
	}
	n.coord = next
	n.logger.LogGravity(force)
	n.metrics.RecordGravity()
}

// applyForce moves c along the unit vector pointing from other toward c,
// scaled by force (in seconds). With AdaptiveHeight enabled and the points
// not coincident, the height term absorbs a share of the force proportional
// to its weight in the current distance, floored at HeightMin.
func (n *Node[V]) applyForce(c Coord[V], other Coord[V], force float64, rng vecd.RandomSource) Coord[V] {
	dir, mag := vecd.UnitDirection(other.Vec, c.Vec, rng)
	c.Vec = c.Vec.Add(dir.Scale(force))
	if n.cfg.AdaptiveHeight && mag > 0 {
		c.Height = math.Max(c.Height+force*(c.Height/mag), n.cfg.HeightMin)
	}
	return c
}
