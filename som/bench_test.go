package som_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/somtsp/som"
)

// BenchmarkEpoch measures one epoch, O(n·2n), for growing city counts.
func BenchmarkEpoch(b *testing.B) {
	for _, n := range []int{10, 100, 500} {
		b.Run(fmt.Sprintf("cities=%d", n), func(b *testing.B) {
			tr := som.New(som.WithSeed(seedDet))
			if err := tr.StartRandom(n, som.Rect(1000, 1000), b.N+1, rateDefault); err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := tr.Epoch(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkWinningNode(b *testing.B) {
	nodes := circlePoints(1000, 500)
	city := som.Point{X: 123, Y: 456}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = som.WinningNode(nodes, city)
	}
}
