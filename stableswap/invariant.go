// Package stableswap implements the stable-curve AMM engine: the
// invariant F(x/d, py/d), the solver that locates the pool's invariant
// constant d and the opposing pool size on each trade, and forward/reverse
// simulated swaps with price-impact gating. x/dex never implements this
// curve — it is CPMM-only — so the curve parameterization itself is taken
// directly from §4.3 (the curve's defining authority); the
// numerical *machinery* around it (hybrid Newton/bisect, lazily-computed
// bounds) is the rootfinder package, and the "try the fast path, fall back
// to a safe slow path" shape it uses is grounded on x/dex/keeper's
// safemath/overflow_protection idiom.
package stableswap

import (
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/rootfinder"
)

var (
	quarter = decimal.MustFromString("0.25")
	four    = decimal.NewFromInt64(4)
)

// chooseGamma selects gamma1 when xn <= pyn (token0 side undersupplied
// relative to token1 in price-adjusted terms), else gamma2.
func chooseGamma(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	if xn.LTE(pyn) {
		return params.Gamma1
	}
	return params.Gamma2
}

// coeff computes alpha · (4·xn·pyn)^gamma for the gamma implied by
// (xn, pyn).
func coeff(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	gamma := chooseGamma(xn, pyn, params)
	base := four.Mul(xn).Mul(pyn)
	return params.Alpha.Mul(base.Pow(gamma))
}

// invariantFnNormalized evaluates F(xn, pyn) = coeff·(xn+pyn−1) + xn·pyn − ¼,
// the defining curve equation. Callers must always
// pass already-normalized inputs (xn = x/d, pyn = py/d), never absolute
// pool sizes — §9 Open Question 2 flags this as the one place an
// implementation can silently go wrong. invariantFnFromInvariant divides
// absolute sizes by d itself; invariantFnFromPoolSizes and negTangent take
// sizes that their callers in this package have already divided by d. All
// of these are unexported, so no other package ever needs to get the shape
// right itself.
func invariantFnNormalized(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	c := coeff(xn, pyn, params)
	sum := xn.Add(pyn).Sub(decimal.One())
	return c.Mul(sum).Add(xn.Mul(pyn)).Sub(quarter)
}

// invariantFnFromInvariant returns F(x/d, py/d) as a function of the
// candidate invariant d, for solving d from absolute pool sizes (x, py)
// at construction time.
func invariantFnFromInvariant(x, py decimal.Decimal, params dexmodel.StableParams) rootfinder.Func {
	return func(d decimal.Decimal) decimal.Decimal {
		xn := x.MustQuo(d)
		pyn := py.MustQuo(d)
		return invariantFnNormalized(xn, pyn, params)
	}
}

// invariantFnFromPoolSizes returns F(xn, pyn) holding d fixed and one of
// the two normalized sizes fixed, as a function of the other normalized
// size — used by solveForPool1Size/solveForPool0Size.
func invariantFnFromPoolSizes(fixed decimal.Decimal, fixedIsX bool, params dexmodel.StableParams) rootfinder.Func {
	return func(other decimal.Decimal) decimal.Decimal {
		if fixedIsX {
			return invariantFnNormalized(fixed, other, params)
		}
		return invariantFnNormalized(other, fixed, params)
	}
}

// computeInvariant solves F(x/d, py/d) = 0 for d given absolute pool sizes
// x and py: Newton from x0 = TVL = x+py, upper bound =
// TVL, ignoreNegative = true, with a lazily-computed geometric-mean lower
// bound (2·√(x·py)) used only if Newton fails.
func computeInvariant(x, py decimal.Decimal, params dexmodel.StableParams) (decimal.Decimal, error) {
	f := invariantFnFromInvariant(x, py, params)
	df := rootfinder.NumericalDerivative(f)
	tvl := x.Add(py)

	lazyLower := func() decimal.Decimal {
		if x.LTE(decimal.One()) || py.LTE(decimal.One()) {
			return decimal.Zero()
		}
		root, err := x.Mul(py).Sqrt()
		if err != nil {
			return decimal.Zero()
		}
		return decimal.NewFromInt64(2).Mul(root)
	}

	return rootfinder.CalcZero(f, df, tvl, tvl, true, nil, lazyLower)
}
