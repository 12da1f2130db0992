// Package cpmm implements the constant-product (X*Y=k) swap simulator:
// forward and reverse swaps with fee handling, and price-impact reporting.
// It is grounded on x/dex/keeper/swap.go's CalculateSwapOutput, with the
// on-chain store/event/transfer side effects stripped away — this package
// is a pure function of (reserves, amount, fee), never of chain state.
package cpmm

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
)

// SwapResult is the outcome of a simulated constant-product swap.
type SwapResult struct {
	// Amount is the swap's other-side amount: net output for a forward
	// swap, required input for a reverse swap.
	Amount       math.Int
	LPFeeAmount  math.Int
	DAOFeeAmount math.Int
	PriceImpact  decimal.Decimal
}

func toDec(i math.Int) decimal.Decimal {
	return decimal.MustFromString(i.String())
}

// SimulateForward computes the raw output for a forward swap of amountIn
// against reserves (reserveIn, reserveOut) at LP fee rate lpFee and DAO
// fee rate daoFee:
//
//	grossOut = reserveOut − (reserveIn·reserveOut)/(reserveIn+amountIn)
//	netOut   = grossOut·(1−lpFee−daoFee), truncated to an integer raw amount.
func SimulateForward(amountIn, reserveIn, reserveOut math.Int, lpFee, daoFee decimal.Decimal) (SwapResult, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if !amountIn.IsPositive() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("input amount must be positive")
	}

	x, y, dx := toDec(reserveIn), toDec(reserveOut), toDec(amountIn)
	k := x.Mul(y)
	newX := x.Add(dx)
	quoted := k.MustQuo(newX)
	grossOut := y.Sub(quoted)
	if grossOut.IsNegative() {
		grossOut = decimal.Zero()
	}

	lpFeeAmt := grossOut.Mul(lpFee)
	daoFeeAmt := grossOut.Mul(daoFee)
	netOut := grossOut.Sub(lpFeeAmt).Sub(daoFeeAmt)

	impact, err := priceImpact(x, y, dx, grossOut)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{
		Amount:       math.NewIntFromBigInt(netOut.ToRaw(0)),
		LPFeeAmount:  math.NewIntFromBigInt(lpFeeAmt.ToRaw(0)),
		DAOFeeAmount: math.NewIntFromBigInt(daoFeeAmt.ToRaw(0)),
		PriceImpact:  impact,
	}, nil
}

// SimulateReverse computes the raw input required to receive exactly
// amountOut from reserves (reserveIn, reserveOut), inverting the forward
// formula algebraically with the fee applied to the output side. Fails with errs.ErrInsufficientLiquidity when amountOut >=
// reserveOut.
func SimulateReverse(amountOut, reserveIn, reserveOut math.Int, lpFee, daoFee decimal.Decimal) (SwapResult, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if amountOut.GTE(reserveOut) {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrapf(
			"requested output %s meets or exceeds reserve %s", amountOut, reserveOut)
	}

	x, y, dy := toDec(reserveIn), toDec(reserveOut), toDec(amountOut)
	fee := lpFee.Add(daoFee)
	grossOut := dy.MustQuo(decimal.One().Sub(fee))
	denom := y.Sub(grossOut)
	if !denom.IsPositive() {
		return SwapResult{}, errs.ErrInsufficientLiquidity.Wrap("output after fees meets or exceeds reserve")
	}

	dx := x.Mul(grossOut).MustQuo(denom)
	lpFeeAmt := grossOut.Mul(lpFee)
	daoFeeAmt := grossOut.Mul(daoFee)

	impact, err := priceImpact(x, y, dx, grossOut)
	if err != nil {
		return SwapResult{}, err
	}

	// Round the required input up: truncating down would under-fund the
	// swap by a fractional raw unit and make the round trip fail to
	// reproduce amountOut exactly.
	return SwapResult{
		Amount:       math.NewIntFromBigInt(dx.ToRawCeil(0)),
		LPFeeAmount:  math.NewIntFromBigInt(lpFeeAmt.ToRaw(0)),
		DAOFeeAmount: math.NewIntFromBigInt(daoFeeAmt.ToRaw(0)),
		PriceImpact:  impact,
	}, nil
}

// priceImpact computes (paid/market − 1), unrounded:
// market = reserveIn/reserveOut; paid = amountIn/grossOut.
func priceImpact(reserveIn, reserveOut, amountIn, grossOut decimal.Decimal) (decimal.Decimal, error) {
	market, err := reserveIn.Quo(reserveOut)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if grossOut.IsZero() {
		return decimal.Zero(), nil
	}
	paid, err := amountIn.Quo(grossOut)
	if err != nil {
		return decimal.Decimal{}, err
	}
	ratio, err := paid.Quo(market)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ratio.Sub(decimal.One()), nil
}

// PoolReserves extracts (reserveIn, reserveOut) from a constant-product
// Pool snapshot for a swap from tokenIn to the pool's other token.
func PoolReserves(p dexmodel.Pool, tokenIn string) (reserveIn, reserveOut math.Int, err error) {
	switch tokenIn {
	case p.Token0.Address:
		return p.Amount0, p.Amount1, nil
	case p.Token1.Address:
		return p.Amount1, p.Amount0, nil
	default:
		return math.Int{}, math.Int{}, errs.ErrTokenMismatch.Wrapf("token %s is not in pool %s", tokenIn, p.Address)
	}
}
