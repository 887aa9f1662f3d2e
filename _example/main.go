// Demo of keeping two 8-dimensional coordinates converged from synthetic
// round-trip samples and estimating the latency between them.
//
// Run with `go run ./_example`.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/kbknapp/violin"
	"github.com/kbknapp/violin/vecd"
)

func main() {
	rng := rand.New(rand.NewPCG(1, uint64(time.Now().UnixNano())))
	mc := &violin.BasicMetricsCollector{}

	// Powers of two (2, 4, 8, 16) tend to embed well; 8 is a good default.
	// vecd.NewDense(8) selects the heap-backed storage strategy instead.
	node, err := violin.New(vecd.NewInline(8)).
		Rand(rng).
		Logger(violin.NewTextLogger(slog.LevelInfo)).
		Metrics(mc).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	peer, err := violin.New(vecd.NewInline(8)).Rand(rng).Build()
	if err != nil {
		log.Fatal(err)
	}

	// The "measured" latency between the two nodes, with some jitter. A real
	// system feeds in samples from its measurement layer instead.
	const trueRTT = 120 * time.Millisecond
	for i := 0; i < 200; i++ {
		jitter := time.Duration((rng.Float64() - 0.5) * 10 * float64(time.Millisecond))
		node.Update(trueRTT+jitter, peer.Coordinate(), rng)
		peer.Update(trueRTT+jitter, node.Coordinate(), rng)
	}

	fmt.Printf("true rtt:       %v\n", trueRTT)
	fmt.Printf("estimated rtt:  %v\n", node.DistanceTo(peer.Coordinate()).Round(time.Millisecond))
	fmt.Printf("local error:    %.4f\n", node.Error())
	fmt.Printf("updates:        %d applied, %d skipped\n",
		mc.GetStats().UpdateCount, mc.GetStats().SkipCount)
}
