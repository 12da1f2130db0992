// Package rootfinder implements the hybrid Newton/bisection zero finder
// the stable-pool engine uses to locate roots of its invariant function,
// which has no closed form. There is no teacher file that builds a generic
// numerical solver — x/dex's constant-product math is entirely closed-form
// — so the hybrid fallback control flow here is grounded on the defensive
// layering idiom x/dex/keeper/safemath.go and overflow_protection.go use:
// attempt the cheap path, and on any failure fall back to a slower path
// that is guaranteed to produce an answer (or a typed error, never a
// silent wrong one).
package rootfinder

import (
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/errs"
)

// Eps is the fixed convergence tolerance for CalcZero.
var Eps = decimal.MustFromString("0.0000000000000001") // 1e-16

// DefaultNewtonMaxIter is Newton's default iteration cap.
const DefaultNewtonMaxIter = 80

// DefaultBisectMaxIter is bisection's default iteration cap.
const DefaultBisectMaxIter = 150

// Func is a scalar function of one decimal variable.
type Func func(decimal.Decimal) decimal.Decimal

// Newton finds x* such that f(x*) ≈ 0 by iterating x ← x − f(x)/df(x).
// Fails with errs.ErrNewtonSlopeZero if df(x) is ever exactly zero, and
// errs.ErrNewtonMaxIter if maxIter iterations pass without
// |x − xPrev| ≤ eps. maxIter <= 0 uses DefaultNewtonMaxIter.
func Newton(f, df Func, x0, eps decimal.Decimal, maxIter int) (decimal.Decimal, error) {
	if maxIter <= 0 {
		maxIter = DefaultNewtonMaxIter
	}
	x := x0
	for i := 0; i < maxIter; i++ {
		slope := df(x)
		if slope.IsZero() {
			return decimal.Zero(), errs.ErrNewtonSlopeZero
		}
		step := f(x).MustQuo(slope)
		xNext := x.Sub(step)
		if xNext.Sub(x).Abs().LTE(eps) {
			return xNext, nil
		}
		x = xNext
	}
	return decimal.Zero(), errs.ErrNewtonMaxIter
}

// Bisect finds x* such that f(x*) ≈ 0 over a bracketing interval [a, b]
// with f(a)·f(b) ≤ 0. Either endpoint already at a zero is returned
// immediately. Fails with errs.ErrBisectSameSign if the bracketing
// precondition doesn't hold, and errs.ErrBisectMaxIter if maxIter halvings
// pass without the interval shrinking to within eps. maxIter <= 0 uses
// DefaultBisectMaxIter.
func Bisect(f Func, a, b, eps decimal.Decimal, maxIter int) (decimal.Decimal, error) {
	if maxIter <= 0 {
		maxIter = DefaultBisectMaxIter
	}

	fa, fb := f(a), f(b)
	if fa.IsZero() {
		return a, nil
	}
	if fb.IsZero() {
		return b, nil
	}
	if fa.Mul(fb).IsPositive() {
		return decimal.Zero(), errs.ErrBisectSameSign
	}

	lower, upper := a, b
	two := decimal.NewFromInt64(2)
	for i := 0; i < maxIter; i++ {
		step := upper.Sub(lower)
		if step.Abs().LTE(eps) {
			return lower, nil
		}
		mid := lower.Add(step.MustQuo(two))
		fMid := f(mid)
		if fMid.IsZero() {
			return mid, nil
		}
		if fa.Mul(fMid).GTE(decimal.Zero()) {
			lower = mid
			fa = fMid
		} else {
			upper = mid
		}
	}
	return decimal.Zero(), errs.ErrBisectMaxIter
}

// LazyBound supplies a bisection lower bound that is only computed if
// bisection actually runs — the stable-pool invariant's geometric-mean
// bound costs two square roots, so CalcZero defers it until Newton has
// already failed. Exactly one of an eager
// lower bound or a LazyBound should be supplied to CalcZero.
type LazyBound func() decimal.Decimal

// relativeStep is the fractional step NumericalDerivative uses to probe
// either side of a point; small enough to stay well inside the curve's
// local linear region at the precisions this package runs at.
var relativeStep = decimal.MustFromString("0.0000000001") // 1e-10
var minStep = decimal.MustFromString("0.0000000001")
var two = decimal.NewFromInt64(2)

// NumericalDerivative returns the central-difference derivative of f as a
// Func, for use as Newton's df when f has no convenient closed form (the
// stable-pool invariant's derivative, once its (4·x·py)^gamma term is
// involved, is one such case — see stableswap).
func NumericalDerivative(f Func) Func {
	return func(x decimal.Decimal) decimal.Decimal {
		h := x.Abs().Mul(relativeStep)
		if h.LT(minStep) {
			h = minStep
		}
		fPlus := f(x.Add(h))
		fMinus := f(x.Sub(h))
		return fPlus.Sub(fMinus).MustQuo(h.Mul(two))
	}
}

// CalcZero attempts Newton first from x0; if Newton succeeds and the
// result is acceptable (non-negative, when ignoreNegative is set), it is
// returned. On any Newton failure, CalcZero falls back to Bisect over
// [lower, upper], where lower is either eagerLower (if non-nil) or the
// value produced by lazyLower (if eagerLower is nil). If neither is
// supplied, CalcZero fails with errs.ErrNoBisectBounds. Eps is fixed at
// rootfinder.Eps.
func CalcZero(f, df Func, x0, upper decimal.Decimal, ignoreNegative bool, eagerLower *decimal.Decimal, lazyLower LazyBound) (decimal.Decimal, error) {
	x, err := Newton(f, df, x0, Eps, DefaultNewtonMaxIter)
	if err == nil {
		if !ignoreNegative || x.GTE(decimal.Zero()) {
			return x, nil
		}
	}

	var lower decimal.Decimal
	switch {
	case eagerLower != nil:
		lower = *eagerLower
	case lazyLower != nil:
		lower = lazyLower()
	default:
		return decimal.Zero(), errs.ErrNoBisectBounds
	}

	return Bisect(f, lower, upper, Eps, DefaultBisectMaxIter)
}
