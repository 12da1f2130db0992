// Package pathfinder enumerates candidate swap paths over the implicit
// pool graph: depth-first search from an input token to an output token,
// tracking visited pools (never tokens) so that a triangular cycle whose
// output token equals its input token is a path this search can find.
// The teacher's FindBestRoute/findRoutesWithBFS in
// x/dex/keeper/multihop.go builds the same implicit token graph from a
// pool list and explores it breadth-first, marking each *token* visited —
// which would reject exactly the A→B→C→A triangle this engine exists to
// find, so this package walks depth-first and marks *pools* visited
// instead.
package pathfinder

import "github.com/paw-chain/paw-arb/dexmodel"

// GetPossiblePaths depth-first searches the pool list from inputToken,
// recording a path snapshot each time the current token equals
// outputToken at depth > 0. Pools are iterated in the
// order they appear in pools, and a pool already used earlier in the
// current path is skipped — but a *token* may reappear any number of
// times, which is what lets a path close a cycle back to inputToken.
func GetPossiblePaths(inputToken, outputToken string, maxHops int, pools dexmodel.PoolsSnapshot) []dexmodel.Path {
	var results []dexmodel.Path
	visited := make(map[string]bool, len(pools))
	var path dexmodel.Path

	var walk func(currentToken string, depth int)
	walk = func(currentToken string, depth int) {
		if currentToken == outputToken && depth > 0 {
			snapshot := make(dexmodel.Path, len(path))
			copy(snapshot, path)
			results = append(results, snapshot)
		}

		if depth >= maxHops {
			return
		}

		for _, pool := range pools {
			if visited[pool.Address] {
				continue
			}
			if !pool.HasToken(currentToken) {
				continue
			}

			other, err := pool.OtherToken(currentToken)
			if err != nil {
				continue
			}

			visited[pool.Address] = true
			path = append(path, pool.Address)

			walk(other.Address, depth+1)

			path = path[:len(path)-1]
			visited[pool.Address] = false
		}
	}

	walk(inputToken, 0)
	return results
}
