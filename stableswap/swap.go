package stableswap

import (
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/errs"
)

// SwapResult is the outcome of a simulated stable-pool swap, all in
// human-readable units. Amount is the swap's other-side amount: net
// output for a forward swap, required input for a reverse swap.
type SwapResult struct {
	Amount       decimal.Decimal
	LPFeeAmount  decimal.Decimal
	DAOFeeAmount decimal.Decimal
	NewAmount0   decimal.Decimal
	NewAmount1   decimal.Decimal
	PriceImpact  decimal.Decimal
}

func (sp *StablePool) checkImpact(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GT(sp.Params.PriceImpactLimit) {
		return errs.ErrPriceImpactExceeded.Wrapf("impact %s%% outside [0, %s]", pct.String(), sp.Params.PriceImpactLimit.String())
	}
	return nil
}

// SimulateToken0ForToken1 simulates swapping dx of token0 into the pool for
// token1. Fails with errs.ErrTradeTooSmall if dx does not
// exceed the pool's MinTradeSize0For1, and errs.ErrPriceImpactExceeded if
// the resulting price impact falls outside [0, PriceImpactLimit].
func (sp *StablePool) SimulateToken0ForToken1(dx decimal.Decimal) (SwapResult, error) {
	if dx.LTE(sp.Params.MinTradeSize0For1) {
		return SwapResult{}, errs.ErrTradeTooSmall.Wrapf("dx %s does not exceed minimum %s", dx.String(), sp.Params.MinTradeSize0For1.String())
	}

	newX := sp.Amount0.Add(dx)
	newY, err := sp.solveForPool1Size(newX)
	if err != nil {
		return SwapResult{}, err
	}

	impact := sp.priceImpactPercent(true, newX, sp.Params.PriceRatio.Mul(newY))
	if err := sp.checkImpact(impact); err != nil {
		return SwapResult{}, err
	}

	grossOut := sp.Amount1.Sub(newY)
	lpFeeAmt := sp.LPFee.Mul(grossOut)
	daoFeeAmt := sp.DAOFee.Mul(grossOut)

	return SwapResult{
		Amount:       grossOut.Sub(lpFeeAmt).Sub(daoFeeAmt),
		LPFeeAmount:  lpFeeAmt,
		DAOFeeAmount: daoFeeAmt,
		NewAmount0:   newX,
		NewAmount1:   newY.Add(lpFeeAmt),
		PriceImpact:  impact,
	}, nil
}

// SimulateToken1ForToken0 is the symmetric counterpart of
// SimulateToken0ForToken1, swapping dy of token1 into the pool for token0.
func (sp *StablePool) SimulateToken1ForToken0(dy decimal.Decimal) (SwapResult, error) {
	if dy.LTE(sp.Params.MinTradeSize1For0) {
		return SwapResult{}, errs.ErrTradeTooSmall.Wrapf("dy %s does not exceed minimum %s", dy.String(), sp.Params.MinTradeSize1For0.String())
	}

	newY := sp.Amount1.Add(dy)
	newX, err := sp.solveForPool0Size(newY)
	if err != nil {
		return SwapResult{}, err
	}

	impact := sp.priceImpactPercent(false, newX, sp.Params.PriceRatio.Mul(newY))
	if err := sp.checkImpact(impact); err != nil {
		return SwapResult{}, err
	}

	grossOut := sp.Amount0.Sub(newX)
	lpFeeAmt := sp.LPFee.Mul(grossOut)
	daoFeeAmt := sp.DAOFee.Mul(grossOut)

	return SwapResult{
		Amount:       grossOut.Sub(lpFeeAmt).Sub(daoFeeAmt),
		LPFeeAmount:  lpFeeAmt,
		DAOFeeAmount: daoFeeAmt,
		NewAmount0:   newX.Add(lpFeeAmt),
		NewAmount1:   newY,
		PriceImpact:  impact,
	}, nil
}

// SimulateReverseToken0ForToken1 computes the token0 input required to
// deliver exactly netOut of token1 to the trader, after fees.
func (sp *StablePool) SimulateReverseToken0ForToken1(netOut decimal.Decimal) (SwapResult, error) {
	feeRate := sp.LPFee.Add(sp.DAOFee)
	grossOut := netOut.MustQuo(decimal.One().Sub(feeRate))
	lpFeeAmt := sp.LPFee.Mul(grossOut)
	daoFeeAmt := sp.DAOFee.Mul(grossOut)

	leaving := sp.Amount1.Sub(grossOut)
	if !leaving.IsPositive() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("requested output meets or exceeds token1 pool size")
	}
	newY := leaving.Add(lpFeeAmt)

	newX, err := sp.solveForPool0Size(leaving)
	if err != nil {
		return SwapResult{}, err
	}

	impact := sp.priceImpactPercent(true, newX, sp.Params.PriceRatio.Mul(leaving))
	if err := sp.checkImpact(impact); err != nil {
		return SwapResult{}, err
	}

	dx := newX.Sub(sp.Amount0)
	return SwapResult{
		Amount:       dx,
		LPFeeAmount:  lpFeeAmt,
		DAOFeeAmount: daoFeeAmt,
		NewAmount0:   newX,
		NewAmount1:   newY,
		PriceImpact:  impact,
	}, nil
}

// SimulateReverseToken1ForToken0 is the symmetric counterpart of
// SimulateReverseToken0ForToken1.
func (sp *StablePool) SimulateReverseToken1ForToken0(netOut decimal.Decimal) (SwapResult, error) {
	feeRate := sp.LPFee.Add(sp.DAOFee)
	grossOut := netOut.MustQuo(decimal.One().Sub(feeRate))
	lpFeeAmt := sp.LPFee.Mul(grossOut)
	daoFeeAmt := sp.DAOFee.Mul(grossOut)

	leaving := sp.Amount0.Sub(grossOut)
	if !leaving.IsPositive() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("requested output meets or exceeds token0 pool size")
	}
	newX := leaving.Add(lpFeeAmt)

	newY, err := sp.solveForPool1Size(leaving)
	if err != nil {
		return SwapResult{}, err
	}

	impact := sp.priceImpactPercent(false, leaving, sp.Params.PriceRatio.Mul(newY))
	if err := sp.checkImpact(impact); err != nil {
		return SwapResult{}, err
	}

	dy := newY.Sub(sp.Amount1)
	return SwapResult{
		Amount:       dy,
		LPFeeAmount:  lpFeeAmt,
		DAOFeeAmount: daoFeeAmt,
		NewAmount0:   newX,
		NewAmount1:   newY,
		PriceImpact:  impact,
	}, nil
}
