package alignath_test

import (
	"fmt"

	"github.com/katalvlaran/alignath"
	"github.com/katalvlaran/alignath/score"
	"github.com/katalvlaran/alignath/seq"
	"github.com/katalvlaran/alignath/weight"
)

// ExampleAlignGlobal aligns "panama" against "banana" with unit
// substitution and a free gap.
func ExampleAlignGlobal() {
	down, right := seq.String("panama"), seq.String("banana")
	sub := score.Func[byte, weight.Int](func(d, r score.Side[byte]) weight.Int {
		if d.Present && r.Present && d.Elem.Value == r.Elem.Value {
			return weight.Int(1)
		}
		return weight.Int(-1)
	})
	gap := score.Func[byte, weight.Int](func(_, _ score.Side[byte]) weight.Int { return weight.Int(0) })

	_, total, err := alignath.AlignGlobal[byte, weight.Int](down, right, sub, gap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output: 4
}
