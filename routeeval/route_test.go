package routeeval_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
	"github.com/paw-chain/paw-arb/pathfinder"
	"github.com/paw-chain/paw-arb/routeeval"
)

func tok(addr string) dexmodel.Token { return dexmodel.Token{Address: addr, Decimals: 6} }

func cpPool(addr, t0, t1 string, r0, r1 int64) dexmodel.Pool {
	return dexmodel.NewConstantProductPool(
		addr, tok(t0), tok(t1), math.NewInt(r0), math.NewInt(r1),
		decimal.MustFromString("0.002"), decimal.MustFromString("0.001"),
	)
}

func TestCalculateRoute_SingleHop(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{cpPool("pool-ab", "a", "b", 1_000_000, 1_000_000)}
	tokens := dexmodel.TokensConfig{tok("a"), tok("b")}

	route, err := routeeval.CalculateRoute(
		math.NewInt(1_000), "a", dexmodel.Path{"pool-ab"}, pools, tokens, dexmodel.DefaultGasMultiplier(),
	)
	require.NoError(t, err)
	require.True(t, route.QuoteOutputAmount.IsPositive())
	require.Equal(t, "b", route.OutputToken.Address)
	require.True(t, route.GasMultiplier.Equal(dexmodel.DefaultGasMultiplier().ConstantProduct))
}

func TestCalculateRoute_UnknownTokenAborts(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{cpPool("pool-ab", "a", "x", 1_000_000, 1_000_000)}
	tokens := dexmodel.TokensConfig{tok("a"), tok("b")}

	_, err := routeeval.CalculateRoute(
		math.NewInt(1_000), "a", dexmodel.Path{"pool-ab"}, pools, tokens, dexmodel.DefaultGasMultiplier(),
	)
	require.ErrorIs(t, err, errs.ErrUnknownToken)
}

func TestCalculateRoute_PoolNotFound(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{cpPool("pool-ab", "a", "b", 1_000_000, 1_000_000)}
	tokens := dexmodel.TokensConfig{tok("a"), tok("b")}

	_, err := routeeval.CalculateRoute(
		math.NewInt(1_000), "a", dexmodel.Path{"pool-missing"}, pools, tokens, dexmodel.DefaultGasMultiplier(),
	)
	require.ErrorIs(t, err, errs.ErrPoolNotFound)
}

func TestGetRoutes_SortedDescendingSkippingFailures(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{
		cpPool("pool-ab-deep", "a", "b", 100_000_000, 100_000_000),
		cpPool("pool-ab-shallow", "a", "b", 10_000, 10_000),
		// Empty reserves make this path fail simulation, so it is skipped.
		cpPool("pool-ab-empty", "a", "b", 0, 0),
	}
	tokens := dexmodel.TokensConfig{tok("a"), tok("b")}

	routes := routeeval.GetRoutes(
		math.NewInt(1_000), "a", "b", 1, pools, tokens, dexmodel.DefaultGasMultiplier(), pathfinder.GetPossiblePaths,
	)

	require.Len(t, routes, 2)
	require.True(t, routes[0].QuoteOutputAmount.GTE(routes[1].QuoteOutputAmount))
	require.Equal(t, dexmodel.Path{"pool-ab-deep"}, routes[0].Path)
}

func TestGetRoutes_NoRoutesReturnsEmpty(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{cpPool("pool-ab", "a", "b", 1_000_000, 1_000_000)}
	tokens := dexmodel.TokensConfig{tok("a"), tok("b")}

	routes := routeeval.GetRoutes(
		math.NewInt(1_000), "a", "c", 2, pools, tokens, dexmodel.DefaultGasMultiplier(), pathfinder.GetPossiblePaths,
	)
	require.Empty(t, routes)
}
