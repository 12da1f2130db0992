package stableswap

import (
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
	"github.com/paw-chain/paw-arb/internal/metrics"
	"github.com/paw-chain/paw-arb/rootfinder"
)

// StablePool is an ephemeral, human-readable-unit working copy of a
// dexmodel.Pool of PoolKindStable, carrying its solved invariant. Route
// evaluation (routeeval) always builds a fresh StablePool per hop and
// discards it after simulating; the snapshot a StablePool is built from is
// never mutated by that path. Direct callers needing a long-lived, mutable
// pool may still update a StablePool's own fields in place between swaps.
type StablePool struct {
	Address   string
	Token0    dexmodel.Token
	Token1    dexmodel.Token
	Amount0   decimal.Decimal // human-readable x
	Amount1   decimal.Decimal // human-readable y
	LPFee     decimal.Decimal
	DAOFee    decimal.Decimal
	Params    dexmodel.StableParams
	Invariant decimal.Decimal // d
}

// New builds a StablePool from a human-readable snapshot and solves its
// invariant d. PriceRatio of zero is treated as an
// unavailable oracle price.
func New(address string, token0, token1 dexmodel.Token, amount0, amount1 decimal.Decimal, lpFee, daoFee decimal.Decimal, params dexmodel.StableParams) (*StablePool, error) {
	if params.PriceRatio.IsZero() || params.PriceRatio.IsNegative() {
		return nil, errs.ErrOracleUnavailable
	}

	py := params.PriceRatio.Mul(amount1)
	d, err := computeInvariant(amount0, py, params)
	if err != nil {
		metrics.NonconvergentSolves.WithLabelValues("invariant").Inc()
		return nil, errs.ErrNonconvergent.Wrapf("computing invariant: %v", err)
	}

	return &StablePool{
		Address:   address,
		Token0:    token0,
		Token1:    token1,
		Amount0:   amount0,
		Amount1:   amount1,
		LPFee:     lpFee,
		DAOFee:    daoFee,
		Params:    params,
		Invariant: d,
	}, nil
}

// FromSnapshot builds a StablePool from a raw dexmodel.Pool of
// PoolKindStable, converting raw reserves to human-readable amounts.
func FromSnapshot(p dexmodel.Pool) (*StablePool, error) {
	x := decimal.NewFromRaw(p.Amount0.BigInt(), p.Token0.Decimals)
	y := decimal.NewFromRaw(p.Amount1.BigInt(), p.Token1.Decimals)
	return New(p.Address, p.Token0, p.Token1, x, y, p.LPFee, p.DAOFee, p.Stable)
}

// py returns the pool's current price-adjusted token1 size.
func (sp *StablePool) py() decimal.Decimal {
	return sp.Params.PriceRatio.Mul(sp.Amount1)
}

// solveForPool1Size fixes the normalized token0 side at newX/d and solves
// for py/d such that F(newX/d, py/d) = 0, returning the
// absolute new token1 pool size.
func (sp *StablePool) solveForPool1Size(newX decimal.Decimal) (decimal.Decimal, error) {
	d := sp.Invariant
	xn := newX.MustQuo(d)
	currentPyn := sp.py().MustQuo(d)

	f := invariantFnFromPoolSizes(xn, true, sp.Params)
	df := rootfinder.NumericalDerivative(f)

	pyn, err := rootfinder.CalcZero(f, df, currentPyn, currentPyn, false, decimalPtr(decimal.Zero()), nil)
	if err != nil {
		metrics.NonconvergentSolves.WithLabelValues("pool1Size").Inc()
		return decimal.Decimal{}, errs.ErrNonconvergent.Wrapf("solving for pool1 size: %v", err)
	}

	py := pyn.Mul(d)
	return py.MustQuo(sp.Params.PriceRatio), nil
}

// solveForPool0Size fixes the normalized token1 side at p·newY/d and
// solves for x/d such that F(x/d, p·newY/d) = 0,
// returning the absolute new token0 pool size.
func (sp *StablePool) solveForPool0Size(newY decimal.Decimal) (decimal.Decimal, error) {
	d := sp.Invariant
	newPy := sp.Params.PriceRatio.Mul(newY)
	pyn := newPy.MustQuo(d)
	currentXn := sp.Amount0.MustQuo(d)

	f := invariantFnFromPoolSizes(pyn, false, sp.Params)
	df := rootfinder.NumericalDerivative(f)

	xn, err := rootfinder.CalcZero(f, df, currentXn, currentXn, false, decimalPtr(decimal.Zero()), nil)
	if err != nil {
		metrics.NonconvergentSolves.WithLabelValues("pool0Size").Inc()
		return decimal.Decimal{}, errs.ErrNonconvergent.Wrapf("solving for pool0 size: %v", err)
	}

	return xn.Mul(d), nil
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// negTangent returns (∂F/∂xn)/(∂F/∂pyn) at (xn, pyn), the negated slope of
// the tangent to the invariant curve used to derive marginal prices.
func negTangent(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	dFdx := rootfinder.NumericalDerivative(func(x decimal.Decimal) decimal.Decimal {
		return invariantFnNormalized(x, pyn, params)
	})(xn)
	dFdpy := rootfinder.NumericalDerivative(func(py decimal.Decimal) decimal.Decimal {
		return invariantFnNormalized(xn, py, params)
	})(pyn)
	return dFdx.MustQuo(dFdpy)
}

// marginalToken0Price returns the marginal price of token0 in units of
// token1 at normalized state (xn, pyn): negTangent divided by the price
// ratio.
func marginalToken0Price(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	return negTangent(xn, pyn, params).MustQuo(params.PriceRatio)
}

// marginalToken1Price is the reciprocal of marginalToken0Price.
func marginalToken1Price(xn, pyn decimal.Decimal, params dexmodel.StableParams) decimal.Decimal {
	return decimal.One().MustQuo(marginalToken0Price(xn, pyn, params))
}

// priceImpactPercent computes (finalPrice/currentPrice − 1)·100 for the
// outgoing token of a swap, comparing the pre-trade and post-trade
// normalized states. A swap draws down the outgoing token's reserve, which
// raises its marginal price, so token0In (token0 coming in, token1 going
// out) reads marginalToken1Price, and vice versa — reading the incoming
// token's price instead falls on every normal trade, since the incoming
// side's marginal price moves the other way.
func (sp *StablePool) priceImpactPercent(token0In bool, newX, newPy decimal.Decimal) decimal.Decimal {
	d := sp.Invariant
	curXn, curPyn := sp.Amount0.MustQuo(d), sp.py().MustQuo(d)
	newXn, newPyn := newX.MustQuo(d), newPy.MustQuo(d)

	var cur, final decimal.Decimal
	if token0In {
		cur = marginalToken1Price(curXn, curPyn, sp.Params)
		final = marginalToken1Price(newXn, newPyn, sp.Params)
	} else {
		cur = marginalToken0Price(curXn, curPyn, sp.Params)
		final = marginalToken0Price(newXn, newPyn, sp.Params)
	}

	ratio := final.MustQuo(cur)
	return ratio.Sub(decimal.One()).Mul(decimal.NewFromInt64(100))
}
