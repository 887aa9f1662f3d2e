// Package violin provides Vivaldi network coordinates for Go.
//
// Each node in a distributed system maintains a synthetic position in a
// low-dimensional metric space such that the distance between two positions
// approximates the real round-trip latency between the nodes. Feeding a node
// one freshly measured latency sample per peer exchange is enough to keep the
// embedding converged; no continuous pairwise probing is required.
//
// # Quick Start
//
//	rng := rand.New(rand.NewPCG(1, 2))
//
//	// 8-dimensional coordinates with allocation-free inline storage.
//	// vecd.NewDense(8) selects the heap-backed strategy instead.
//	node, _ := violin.New(vecd.NewInline(8)).Rand(rng).Build()
//	peer, _ := violin.New(vecd.NewInline(8)).Rand(rng).Build()
//
//	// Feed each measured round-trip time into the node.
//	applied := node.Update(23*time.Millisecond, peer.Coordinate(), rng)
//
//	// Cheap latency estimates, no probe required.
//	est := node.DistanceTo(peer.Coordinate())
//
// # Coordinate Model
//
// A Coord is a position vector plus a non-negative height term (modeling
// access-link latency that a Euclidean embedding cannot represent), a local
// error estimate (positioning confidence), and an optional manual distance
// offset. It is a plain aggregate of N+3 float64 values, so an external wire
// layer can encode it directly; this package performs no I/O and owns no wire
// format.
//
// # Concurrency
//
// Update and DistanceTo never block and never allocate when Inline vectors
// are used. A Node is single-writer: concurrent mutation of one Node needs
// external synchronization, while distinct Nodes are fully independent.
// Randomness is always injected via an explicit vecd.RandomSource, so results
// are reproducible under fixed seeds.
package violin
