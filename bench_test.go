package alignath_test

import (
	"testing"

	"github.com/katalvlaran/alignath"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// benchmarkAlignGlobal runs AlignGlobal on two sequences of length n
// built from a small repeating alphabet, full-grid by default.
func benchmarkAlignGlobal(b *testing.B, n int, opts ...alignath.Option) {
	alphabet := []byte("acgt")
	down := make([]byte, n)
	right := make([]byte, n)
	for i := 0; i < n; i++ {
		down[i] = alphabet[i%len(alphabet)]
		right[i] = alphabet[(i+1)%len(alphabet)]
	}
	sub := score.Func[byte, weight.Int](func(d, r score.Side[byte]) weight.Int {
		if d.Present && r.Present && d.Elem.Value == r.Elem.Value {
			return weight.Int(1)
		}
		return weight.Int(-1)
	})
	gap := score.Func[byte, weight.Int](func(_, _ score.Side[byte]) weight.Int { return weight.Int(-1) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := alignath.AlignGlobal[byte, weight.Int](seq.Slice[byte](down), seq.Slice[byte](right), sub, gap, opts...)
		if err != nil {
			b.Fatalf("AlignGlobal failed: %v", err)
		}
	}
}

func BenchmarkAlignGlobal_FullGridSmall(b *testing.B) {
	benchmarkAlignGlobal(b, 64)
}

func BenchmarkAlignGlobal_SlicedSmall(b *testing.B) {
	benchmarkAlignGlobal(b, 64, alignath.WithSliced())
}
