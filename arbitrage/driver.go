// Package arbitrage is the top-level driver: for each borrowable token
// and a small set of trial borrow magnitudes, it prices every triangular
// (or longer) cycle back to that same token, keeps the profitable ones,
// and emits the single best opportunity as a TradePlan for the
// (out-of-scope) transaction-building collaborator to execute. It is grounded on x/dex/keeper/flashloan.go's borrow/repay
// bookkeeping for the shape of a borrow-swap-repay cycle — this engine
// is the offchain counterpart that decides whether such a cycle is worth
// executing at all, rather than the onchain module that detects and logs
// one after the fact.
package arbitrage

import (
	"cosmossdk.io/math"
	"github.com/google/uuid"

	"github.com/paw-chain/paw-arb/dexmodel"
	"github.com/paw-chain/paw-arb/errs"
	"github.com/paw-chain/paw-arb/pathfinder"
	"github.com/paw-chain/paw-arb/routeeval"
)

// halfFactor is the second trial magnitude §4.8 names explicitly
// ("tradeSize, tradeSize·0.5").
var halfFactor = math.LegacyNewDecWithPrec(5, 1)

// candidate pairs a priced Route with the borrowable that produced it, so
// the winning route can be traced back to its borrow token after the
// routes from every borrowable have been concatenated and sorted
// together. profit and profitRatio are recorded alongside the route's own
// gross quoteOutputAmount per Open Question 1's resolution (SPEC_FULL.md
// §6); the selection below still uses gross output. Candidates are not
// returned: FindOpportunity's result carries only the TradePlan, so
// profit and profitRatio are not visible to its caller.
type candidate struct {
	route       dexmodel.Route
	borrowable  dexmodel.Borrowable
	profit      math.Int
	profitRatio math.LegacyDec
}

// FindOpportunity runs the full scan described in §4.8 and
// returns the single best TradePlan, or nil if no route recovers more
// than its own input across every borrowable and trial magnitude.
// minimumProfit is added on top of the borrowed amount to set
// TradePlan.ExpectedReturn.
func FindOpportunity(
	borrowables []dexmodel.Borrowable,
	tradeSizes dexmodel.TradeSizes,
	pools dexmodel.PoolsSnapshot,
	tokens dexmodel.TokensConfig,
	gas dexmodel.GasMultiplier,
	maxHops int,
	minimumProfit math.Int,
) (*dexmodel.TradePlan, error) {
	var candidates []candidate

	for _, b := range borrowables {
		size, ok := tradeSizes[b.Token.Address]
		if !ok {
			continue
		}

		magnitudes := []math.Int{
			size.Raw,
			size.Raw.ToLegacyDec().Mul(halfFactor).TruncateInt(),
		}

		for _, magnitude := range magnitudes {
			if !magnitude.IsPositive() {
				continue
			}

			routes := routeeval.GetRoutes(
				magnitude, b.Token.Address, b.Token.Address, maxHops,
				pools, tokens, gas, pathfinder.GetPossiblePaths,
			)

			for _, route := range routes {
				if route.QuoteOutputAmount.GT(magnitude) {
					profit := route.QuoteOutputAmount.Sub(route.InputAmount)
					candidates = append(candidates, candidate{
						route:       route,
						borrowable:  b,
						profit:      profit,
						profitRatio: profit.ToLegacyDec().Quo(route.InputAmount.ToLegacyDec()),
					})
				}
			}
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.route.QuoteOutputAmount.GT(best.route.QuoteOutputAmount) {
			best = c
		}
	}

	poolsByAddr, err := pools.Lookup()
	if err != nil {
		return nil, err
	}

	hops, err := hopsFromPath(best.route.Path, best.borrowable.Token.Address, poolsByAddr)
	if err != nil {
		return nil, err
	}

	return &dexmodel.TradePlan{
		PlanID:         uuid.NewString(),
		BorrowToken:    best.borrowable.Token,
		BorrowAmount:   best.route.InputAmount,
		RouterPath:     hops,
		ExpectedReturn: best.route.InputAmount.Add(minimumProfit),
	}, nil
}

// hopsFromPath replays a priced path to recover each hop's (tokenIn,
// tokenOut) pair, which Route itself does not retain.
func hopsFromPath(path dexmodel.Path, inputToken string, poolsByAddr map[string]dexmodel.Pool) ([]dexmodel.RouterHop, error) {
	hops := make([]dexmodel.RouterHop, 0, len(path))
	current := inputToken

	for _, addr := range path {
		pool, ok := poolsByAddr[addr]
		if !ok {
			return nil, errs.ErrPoolNotFound.Wrapf("pool %s not in pool snapshot", addr)
		}

		other, err := pool.OtherToken(current)
		if err != nil {
			return nil, err
		}

		hops = append(hops, dexmodel.RouterHop{
			PoolAddress: addr,
			TokenIn:     current,
			TokenOut:    other.Address,
		})
		current = other.Address
	}

	return hops, nil
}
