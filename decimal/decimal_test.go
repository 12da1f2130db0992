package decimal_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/errs"
)

func TestSetPrecision_PanicsBelowFloor(t *testing.T) {
	require.Panics(t, func() { decimal.SetPrecision(decimal.MinPrecision - 1) })
}

func TestArithmetic(t *testing.T) {
	a := decimal.NewFromInt64(10)
	b := decimal.NewFromInt64(4)

	require.True(t, a.Add(b).Equal(decimal.NewFromInt64(14)))
	require.True(t, a.Sub(b).Equal(decimal.NewFromInt64(6)))
	require.True(t, a.Mul(b).Equal(decimal.NewFromInt64(40)))

	q, err := a.Quo(b)
	require.NoError(t, err)
	require.True(t, q.Equal(decimal.MustFromString("2.5")))
}

func TestQuo_DivideByZero(t *testing.T) {
	_, err := decimal.NewFromInt64(1).Quo(decimal.Zero())
	require.ErrorIs(t, err, errs.ErrDivideByZero)
}

func TestPowInt(t *testing.T) {
	base := decimal.NewFromInt64(3)
	require.True(t, base.PowInt(0).Equal(decimal.One()))
	require.True(t, base.PowInt(4).Equal(decimal.NewFromInt64(81)))
}

func TestSqrt(t *testing.T) {
	root, err := decimal.NewFromInt64(16).Sqrt()
	require.NoError(t, err)
	require.True(t, root.Equal(decimal.NewFromInt64(4)))
}

func TestSqrt_NegativeFails(t *testing.T) {
	_, err := decimal.NewFromInt64(-1).Sqrt()
	require.ErrorIs(t, err, errs.ErrNegativeSqrt)
}

func TestRawRoundTrip(t *testing.T) {
	raw := big.NewInt(1_234_560)
	d := decimal.NewFromRaw(raw, 6)
	require.Equal(t, "1.23456", d.String())
	require.Equal(t, raw.String(), d.ToRaw(6).String())
}

func TestToRawCeil_RoundsFractionalUp(t *testing.T) {
	d := decimal.MustFromString("1.0000001")
	got := d.ToRawCeil(0)
	require.Equal(t, big.NewInt(2).String(), got.String())
}

func TestToRawCeil_ExactNoRoundUp(t *testing.T) {
	d := decimal.MustFromString("2")
	got := d.ToRawCeil(0)
	require.Equal(t, big.NewInt(2).String(), got.String())
}

func TestComparisons(t *testing.T) {
	a, b := decimal.NewFromInt64(5), decimal.NewFromInt64(7)
	require.True(t, a.LT(b))
	require.True(t, b.GT(a))
	require.True(t, a.LTE(a))
	require.True(t, b.GTE(b))
	require.Equal(t, -1, a.Cmp(b))
}
