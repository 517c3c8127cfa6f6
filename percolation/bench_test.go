package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolate/percolation"
)

// BenchmarkOpenUntilPercolates measures one full percolation run on 200×200.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := percolation.New(n)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for !m.Percolates() {
			if _, _, _, err := m.OpenRandom(r); err != nil {
				b.Fatalf("OpenRandom failed: %v", err)
			}
		}
	}
}
