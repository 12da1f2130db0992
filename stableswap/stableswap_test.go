package stableswap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
	"github.com/paw-chain/paw-arb/stableswap"
)

func balancedParams() dexmodel.StableParams {
	return dexmodel.StableParams{
		PriceRatio:        decimal.One(),
		Alpha:             decimal.MustFromString("0.00005"),
		Gamma1:            decimal.NewFromInt64(4),
		Gamma2:            decimal.NewFromInt64(4),
		MinTradeSize0For1: decimal.MustFromString("0.01"),
		MinTradeSize1For0: decimal.MustFromString("0.01"),
		PriceImpactLimit:  decimal.NewFromInt64(1),
	}
}

func newBalancedPool(t *testing.T) *stableswap.StablePool {
	t.Helper()
	sp, err := stableswap.New(
		"stable-pool-1",
		dexmodel.Token{Address: "usdc", Decimals: 6},
		dexmodel.Token{Address: "usdt", Decimals: 6},
		decimal.NewFromInt64(1_000_000),
		decimal.NewFromInt64(1_000_000),
		decimal.MustFromString("0.0004"),
		decimal.MustFromString("0.0001"),
		balancedParams(),
	)
	require.NoError(t, err)
	return sp
}

func TestNew_OracleUnavailable(t *testing.T) {
	params := balancedParams()
	params.PriceRatio = decimal.Zero()
	_, err := stableswap.New(
		"p", dexmodel.Token{Address: "a", Decimals: 6}, dexmodel.Token{Address: "b", Decimals: 6},
		decimal.NewFromInt64(100), decimal.NewFromInt64(100),
		decimal.Zero(), decimal.Zero(), params,
	)
	require.ErrorIs(t, err, errs.ErrOracleUnavailable)
}

func TestNew_SolvesPositiveInvariant(t *testing.T) {
	sp := newBalancedPool(t)
	require.True(t, sp.Invariant.IsPositive())
}

func TestSimulateToken0ForToken1_Basic(t *testing.T) {
	sp := newBalancedPool(t)
	res, err := sp.SimulateToken0ForToken1(decimal.NewFromInt64(1000))
	require.NoError(t, err)
	require.True(t, res.Amount.IsPositive())
	// A small trade against a deep, balanced stable pool should return
	// very close to 1:1, net of the pool's small fee.
	require.True(t, res.Amount.LT(decimal.NewFromInt64(1000)))
	require.True(t, res.Amount.GT(decimal.MustFromString("990")))
}

func TestSimulateToken0ForToken1_BelowMinimumRejected(t *testing.T) {
	sp := newBalancedPool(t)
	_, err := sp.SimulateToken0ForToken1(decimal.MustFromString("0.01"))
	require.ErrorIs(t, err, errs.ErrTradeTooSmall)
}

func TestSimulateToken0ForToken1_ExcessivePriceImpactRejected(t *testing.T) {
	sp := newBalancedPool(t)
	_, err := sp.SimulateToken0ForToken1(decimal.NewFromInt64(9_000_000))
	require.ErrorIs(t, err, errs.ErrPriceImpactExceeded)
}

func TestSimulateToken1ForToken0_Basic(t *testing.T) {
	sp := newBalancedPool(t)
	res, err := sp.SimulateToken1ForToken0(decimal.NewFromInt64(1000))
	require.NoError(t, err)
	require.True(t, res.Amount.IsPositive())
	require.True(t, res.Amount.LT(decimal.NewFromInt64(1000)))
}

func TestSimulateReverseToken0ForToken1_MatchesForward(t *testing.T) {
	sp := newBalancedPool(t)
	fwd, err := sp.SimulateToken0ForToken1(decimal.NewFromInt64(1000))
	require.NoError(t, err)

	rev, err := sp.SimulateReverseToken0ForToken1(fwd.Amount)
	require.NoError(t, err)
	// Required input should closely match the amount that produced fwd.Amount.
	diff := rev.Amount.Sub(decimal.NewFromInt64(1000)).Abs()
	require.True(t, diff.LT(decimal.MustFromString("1")))
}
