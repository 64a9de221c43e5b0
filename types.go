package alignath

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/alignath/container"
	"github.com/katalvlaran/alignath/graph"
)

// Sentinel errors this package's façades surface directly, beyond the
// ones forwarded unchanged from graph, container, and slicebt.
var (
	// ErrSequenceTooLarge indicates max(|D|,|R|)+1 overflows the chosen
	// IndexWidth.
	ErrSequenceTooLarge = errors.New("alignath: sequence too large for the chosen index width")
)

// IndexWidth names the grid-coordinate width a caller expects their
// input to fit. Go's int is always wide enough in practice (the package
// never narrows a coordinate below it), so IndexWidth only gates
// CheckIndexWidth's validation; every named width runs against the same
// underlying int grid.
type IndexWidth int

const (
	// Width8 models an 8-bit signed grid coordinate (max 127).
	Width8 IndexWidth = iota
	// Width16 models a 16-bit signed grid coordinate.
	Width16
	// Width32 models a 32-bit signed grid coordinate.
	Width32
	// WidthSize models the platform's native int ("size_t" analogue):
	// no practical input overflows it.
	WidthSize
)

func (w IndexWidth) max() int {
	switch w {
	case Width8:
		return 1<<7 - 1
	case Width16:
		return 1<<15 - 1
	case Width32:
		return 1<<31 - 1
	default:
		return int(^uint(0) >> 1)
	}
}

// CheckIndexWidth validates that the chosen grid-coordinate width can
// represent max(downLen,rightLen)+1 without overflow.
func CheckIndexWidth(width IndexWidth, downLen, rightLen int) error {
	maxLen := downLen
	if rightLen > maxLen {
		maxLen = rightLen
	}
	if maxLen+1 > width.max() {
		return ErrSequenceTooLarge
	}
	return nil
}

func checkTolerance(tolerance float64) error {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return graph.ErrNonFiniteTolerance
	}
	return nil
}

// Option configures an Align* call. The zero value of Options (via
// DefaultOptions) runs the full-grid backtracker over an unbounded heap
// arena with a background context.
type Option func(*Options)

// Options holds every Align* call's optional knobs.
type Options struct {
	// Ctx allows caller-driven cancellation. It is checked before the
	// backtracker starts, then once per node by the full-grid backtracker
	// and once per row by the sliced backtracker's walkers.
	Ctx context.Context
	// Tolerance absorbs floating-point rounding in the sliced
	// backtracker's resident-on-max-path tests (package segment). Ignored
	// by the full-grid backtracker, which never needs it.
	Tolerance float64
	// IndexWidth is validated against the input sizes before any work
	// starts; see CheckIndexWidth.
	IndexWidth IndexWidth
	// Sliced selects the linear-memory sliced backtracker (package
	// slicebt) instead of the default full-grid one.
	Sliced bool
	// StackCapacity, when positive, switches both the full-grid path
	// container and the sliced path arena to a bounded stack factory of
	// this capacity instead of an unbounded heap factory.
	StackCapacity int
}

// DefaultOptions returns the zero-configuration Options: background
// context, a 1e-9 tolerance, native-width indices, full-grid backtracking
// over an unbounded heap arena.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Tolerance:  1e-9,
		IndexWidth: WidthSize,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance overrides the default tolerance used by the sliced
// backtracker's max-path tests.
func WithTolerance(tolerance float64) Option {
	return func(o *Options) { o.Tolerance = tolerance }
}

// WithIndexWidth overrides the grid-coordinate width validated against
// the input sizes.
func WithIndexWidth(width IndexWidth) Option {
	return func(o *Options) { o.IndexWidth = width }
}

// WithSliced selects the linear-memory sliced backtracker.
func WithSliced() Option {
	return func(o *Options) { o.Sliced = true }
}

// WithStackCapacity selects a bounded stack arena of the given capacity
// for both the full-grid and sliced backtrackers' path containers.
func WithStackCapacity(capacity int) Option {
	return func(o *Options) { o.StackCapacity = capacity }
}

func (o Options) edgeFactory() (container.Factory[graph.Edge], error) {
	if o.StackCapacity > 0 {
		return container.NewFactory[graph.Edge](container.Stack, o.StackCapacity)
	}
	return container.NewFactory[graph.Edge](container.Heap, 0)
}
