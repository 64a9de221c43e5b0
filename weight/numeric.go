package weight

import "gonum.org/v1/gonum/floats/scalar"

// Int is an integer-valued weight. Comparisons are always exact;
// WithinTolerance ignores tol because integer sums never drift.
type Int int64

func (a Int) Add(b Int) Int                         { return a + b }
func (a Int) Sub(b Int) Int                         { return a - b }
func (a Int) Less(b Int) bool                       { return a < b }
func (a Int) Equal(b Int) bool                      { return a == b }
func (a Int) WithinTolerance(b Int, _ float64) bool { return a == b }

// Float64 is a floating-point weight. WithinTolerance delegates to gonum's
// absolute-tolerance comparison so repeated summation of many edge weights
// does not make equal-weight paths compare unequal.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Less(b Float64) bool   { return a < b }
func (a Float64) Equal(b Float64) bool  { return a == b }
func (a Float64) WithinTolerance(b Float64, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}

// Int8, Int16, Int32 round out the narrow integer widths. Nothing widens
// them: an aligner runs entirely in the weight type its scorers return.
type Int8 int8

func (a Int8) Add(b Int8) Int8                        { return a + b }
func (a Int8) Sub(b Int8) Int8                        { return a - b }
func (a Int8) Less(b Int8) bool                       { return a < b }
func (a Int8) Equal(b Int8) bool                      { return a == b }
func (a Int8) WithinTolerance(b Int8, _ float64) bool { return a == b }

type Int16 int16

func (a Int16) Add(b Int16) Int16                       { return a + b }
func (a Int16) Sub(b Int16) Int16                       { return a - b }
func (a Int16) Less(b Int16) bool                       { return a < b }
func (a Int16) Equal(b Int16) bool                      { return a == b }
func (a Int16) WithinTolerance(b Int16, _ float64) bool { return a == b }

type Int32 int32

func (a Int32) Add(b Int32) Int32                       { return a + b }
func (a Int32) Sub(b Int32) Int32                       { return a - b }
func (a Int32) Less(b Int32) bool                       { return a < b }
func (a Int32) Equal(b Int32) bool                      { return a == b }
func (a Int32) WithinTolerance(b Int32, _ float64) bool { return a == b }

// Float32 is the narrow floating-point width; tolerance comparisons widen
// to float64 before delegating to gonum so the epsilon is meaningful.
type Float32 float32

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Less(b Float32) bool   { return a < b }
func (a Float32) Equal(b Float32) bool  { return a == b }
func (a Float32) WithinTolerance(b Float32, tol float64) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), tol)
}
