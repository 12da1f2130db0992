package pathfinder_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/paw-arb/decimal"
	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/pathfinder"
)

func tok(addr string) dexmodel.Token { return dexmodel.Token{Address: addr, Decimals: 6} }

func cpPool(addr, t0, t1 string) dexmodel.Pool {
	return dexmodel.NewConstantProductPool(
		addr, tok(t0), tok(t1), math.NewInt(1_000_000), math.NewInt(1_000_000),
		decimal.MustFromString("0.002"), decimal.MustFromString("0.001"),
	)
}

func TestGetPossiblePaths_DirectRoute(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{cpPool("pool-ab", "a", "b")}
	paths := pathfinder.GetPossiblePaths("a", "b", 3, pools)
	require.Len(t, paths, 1)
	require.Equal(t, dexmodel.Path{"pool-ab"}, paths[0])
}

func TestGetPossiblePaths_Triangle(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{
		cpPool("pool-ab", "a", "b"),
		cpPool("pool-bc", "b", "c"),
		cpPool("pool-ca", "c", "a"),
	}
	paths := pathfinder.GetPossiblePaths("a", "a", 3, pools)
	// Both directions around the triangle are simple cycles; pool-ab comes
	// before pool-ca in the pool list, so the a->b->c->a cycle is found first.
	require.Len(t, paths, 2)
	require.Equal(t, dexmodel.Path{"pool-ab", "pool-bc", "pool-ca"}, paths[0])
	require.Equal(t, dexmodel.Path{"pool-ca", "pool-bc", "pool-ab"}, paths[1])
}

func TestGetPossiblePaths_NoPathWithinMaxHops(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{
		cpPool("pool-ab", "a", "b"),
		cpPool("pool-bc", "b", "c"),
	}
	paths := pathfinder.GetPossiblePaths("a", "c", 1, pools)
	require.Empty(t, paths)
}

func TestGetPossiblePaths_DedupByPool(t *testing.T) {
	pools := dexmodel.PoolsSnapshot{
		cpPool("pool-ab-1", "a", "b"),
		cpPool("pool-ab-2", "a", "b"),
	}
	paths := pathfinder.GetPossiblePaths("a", "b", 3, pools)

	found := map[string]bool{}
	for _, p := range paths {
		require.Len(t, p, 1)
		found[p[0]] = true
	}
	require.True(t, found["pool-ab-1"])
	require.True(t, found["pool-ab-2"])

	seen := make(map[string]bool)
	for _, p := range paths {
		for _, addr := range p {
			require.False(t, seen[addr], "pool %s appears twice within a single path", addr)
			seen[addr] = true
		}
		seen = make(map[string]bool)
	}
}
