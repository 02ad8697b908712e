package waste

import (
	"testing"
	"time"

	"lowperf/pkg/clock"
	"lowperf/pkg/random"
)

func BenchmarkConcatStrings(b *testing.B) {
	clk := clock.NewFixed(time.UnixMilli(0))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ConcatStrings(1000, clk)
	}
}

func BenchmarkCreateUsers(b *testing.B) {
	src := random.NewSeeded(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		CreateUsers(1000, 10, src)
	}
}

func BenchmarkGrowCollections(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		GrowCollections(1000, 100, 1000)
	}
}

func BenchmarkBoxIntegers(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BoxIntegers(1000, 500)
	}
}
