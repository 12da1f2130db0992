package cpmm_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/cpmm"
	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
)

func TestSimulateForward_Basic(t *testing.T) {
	reserveIn := math.NewInt(1_000_000)
	reserveOut := math.NewInt(1_000_000)
	amountIn := math.NewInt(1_000)
	lpFee := decimal.MustFromString("0.002")
	daoFee := decimal.MustFromString("0.001")

	res, err := cpmm.SimulateForward(amountIn, reserveIn, reserveOut, lpFee, daoFee)
	require.NoError(t, err)
	require.True(t, res.Amount.IsPositive())
	require.True(t, res.Amount.LT(amountIn))
	require.True(t, res.PriceImpact.IsPositive())
	require.True(t, res.LPFeeAmount.IsPositive())
	// grossOut is about 999.001, so the 0.1% DAO fee is 0.999 raw units,
	// which truncates to zero.
	require.True(t, res.DAOFeeAmount.IsZero())
}

func TestSimulateForward_ZeroReservesRejected(t *testing.T) {
	lpFee := decimal.MustFromString("0.002")
	daoFee := decimal.MustFromString("0.001")
	_, err := cpmm.SimulateForward(math.NewInt(100), math.ZeroInt(), math.NewInt(100), lpFee, daoFee)
	require.ErrorIs(t, err, errs.ErrInsufficientLiquidity)
}

func TestSimulateReverse_RoundTripsForward(t *testing.T) {
	reserveIn := math.NewInt(5_000_000)
	reserveOut := math.NewInt(5_000_000)
	lpFee := decimal.MustFromString("0.002")
	daoFee := decimal.MustFromString("0.001")

	fwd, err := cpmm.SimulateForward(math.NewInt(10_000), reserveIn, reserveOut, lpFee, daoFee)
	require.NoError(t, err)

	rev, err := cpmm.SimulateReverse(fwd.Amount, reserveIn, reserveOut, lpFee, daoFee)
	require.NoError(t, err)
	// The reverse quote must be sufficient to reproduce at least fwd.Amount
	// of output; rounding only ever pushes the required input up.
	require.True(t, rev.Amount.GTE(math.NewInt(10_000)))
}

func TestSimulateReverse_OutputExceedsReserve(t *testing.T) {
	lpFee := decimal.MustFromString("0.002")
	daoFee := decimal.MustFromString("0.001")
	_, err := cpmm.SimulateReverse(math.NewInt(100), math.NewInt(1000), math.NewInt(100), lpFee, daoFee)
	require.ErrorIs(t, err, errs.ErrInsufficientLiquidity)
}

func TestPoolReserves_TokenMismatch(t *testing.T) {
	p := dexmodel.NewConstantProductPool(
		"pool-1",
		dexmodel.Token{Address: "a", Decimals: 6},
		dexmodel.Token{Address: "b", Decimals: 6},
		math.NewInt(1000), math.NewInt(1000),
		decimal.MustFromString("0.002"), decimal.MustFromString("0.001"),
	)
	_, _, err := cpmm.PoolReserves(p, "c")
	require.ErrorIs(t, err, errs.ErrTokenMismatch)
}

func TestPoolReserves_OrdersByTokenIn(t *testing.T) {
	p := dexmodel.NewConstantProductPool(
		"pool-1",
		dexmodel.Token{Address: "a", Decimals: 6},
		dexmodel.Token{Address: "b", Decimals: 6},
		math.NewInt(1000), math.NewInt(2000),
		decimal.MustFromString("0.002"), decimal.MustFromString("0.001"),
	)
	in, out, err := cpmm.PoolReserves(p, "b")
	require.NoError(t, err)
	require.True(t, in.Equal(math.NewInt(2000)))
	require.True(t, out.Equal(math.NewInt(1000)))
}
