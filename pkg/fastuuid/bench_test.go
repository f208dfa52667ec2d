package fastuuid

import "testing"

func BenchmarkNext(b *testing.B) {
	g := MustNewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Next()
	}
}

func BenchmarkNextContended(b *testing.B) {
	g := MustNewGenerator()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Next()
		}
	})
}

func BenchmarkHex128Into(b *testing.B) {
	g := MustNewGenerator()
	var buf [Hex128Size]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := g.Hex128Into(&buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHex128IntoUnchecked(b *testing.B) {
	g := MustNewGenerator()
	var buf [Hex128Size]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Hex128IntoUnchecked(&buf)
	}
}

func BenchmarkHex128String(b *testing.B) {
	g := MustNewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := g.Hex128String(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHex128StringUnchecked(b *testing.B) {
	g := MustNewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Hex128StringUnchecked()
	}
}
