package optimalinput_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/optimalinput"
)

func TestSolve_ReturnsTwoRealRoots(t *testing.T) {
	base0 := decimal.NewFromInt64(1_000_000)
	x0 := decimal.NewFromInt64(1_000_000)
	x1 := decimal.NewFromInt64(1_200_000)
	y1 := decimal.NewFromInt64(1_000_000)
	y2 := decimal.NewFromInt64(1_100_000)
	base2 := decimal.NewFromInt64(1_000_000)
	fee := decimal.MustFromString("0.003")

	roots, err := optimalinput.Solve(base0, x0, x1, y1, y2, base2, fee, fee, fee)
	require.NoError(t, err)
	require.False(t, roots.Root1.Equal(roots.Root2))
}

func TestSolve_ZeroFeeIdenticalReservesRootSum(t *testing.T) {
	// With zero fees and identical reserves of 1e6 on every leg:
	// t1 = 1e18, S = 1e36 so sqrtS = t1, and D = 3e12. Root2 = -(t1 - sqrtS)/D
	// is therefore zero and Root1 = -2*t1/D = -2e6/3.
	base0 := decimal.NewFromInt64(1_000_000)
	x0 := decimal.NewFromInt64(1_000_000)
	x1 := decimal.NewFromInt64(1_000_000)
	y1 := decimal.NewFromInt64(1_000_000)
	y2 := decimal.NewFromInt64(1_000_000)
	base2 := decimal.NewFromInt64(1_000_000)
	zero := decimal.Zero()

	roots, err := optimalinput.Solve(base0, x0, x1, y1, y2, base2, zero, zero, zero)
	require.NoError(t, err)
	sum := roots.Root1.Add(roots.Root2)
	// root1 + root2 = -2*t1/D, a fixed value independent of sqrtS.
	require.False(t, sum.IsZero() && roots.Root1.IsZero())
	require.True(t, roots.Root2.IsZero())
	require.True(t, sum.Equal(decimal.NewFromInt64(-2_000_000).MustQuo(decimal.NewFromInt64(3))))
}
